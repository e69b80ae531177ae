package cmds

import "fmt"

// Var defines name VALUE to set the returned variable, and "name." to reset it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(fmt.Sprintf("set %s", name)))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc(fmt.Sprintf("reset %s", name)))
	return &value
}

// Switch defines name to turn the returned flag on, and "!name" to turn it off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(fmt.Sprintf("enable %s", name)))
	Define("!"+name, Func(func() {
		value = false
	}).Desc(fmt.Sprintf("disable %s", name)))
	return &value
}

// Collect defines name VALUE to append to the returned slice.
func Collect[T any](name string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}).Desc(fmt.Sprintf("add to %s", name)))
	return &values
}
