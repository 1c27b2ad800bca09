package cmds

func Var[T any](name string) *T {
	return DescVar[T](name, "", "")
}

// DescVar is Var with an argument placeholder and a description for usage output.
func DescVar[T any](name string, arg string, desc string) *T {
	var value T

	// set
	command := Func(func(v T) {
		value = v
	}).Desc(desc)
	if arg != "" {
		command.Args(arg)
	}
	Define(name, command)

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Args collects positional arguments of the global executor.
func Args() *[]string {
	var value []string
	GlobalExecutor.Positional(Func(func(v string) {
		value = append(value, v)
	}).Desc("positional arguments"))
	return &value
}
