/*

Package model is the instruction modeling layer of the superoptimizer.

Assembly Text ->
	parse (arch variants, hint tags) ->
Instructions (inst) ->
	parsing callbacks (dfg) ->
	fusion callbacks (dfg) ->
Instructions ->
	cost model (target) ->
	estimate ->
Schedule

Instructions ->
	write ->
Assembly Text

Architectures and targets are chosen by name from a static registry.

*/
package model
