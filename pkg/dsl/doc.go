/*
Package dsl offers a small fluent builder for constructing transition tables
in code, compiling down to the memory adapter.

	table, err := dsl.New().
		Initial(0).
		From(0).On(1, 1, 9).
		From(1).On(0, 0, 4).On(1, 1, 2).
		Build()

It is sugar over memory.NewTable, aimed at tests and examples; production
tables usually arrive as YAML documents (see pkg/adapters/yamltable).
*/
package dsl
