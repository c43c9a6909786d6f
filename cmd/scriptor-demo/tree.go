package main

import (
	"fmt"

	scriptor "github.com/Night-Fall-Studio/Scriptor"
)

func buildTree(d *scriptor.Dispatcher[Source]) {
	d.Register(
		scriptor.Literal[Source]("echo").
			Then(scriptor.Argument[Source, string]("msg", scriptor.Greedy[Source]()).
				Executes(func(cc *scriptor.CommandContext[Source]) (int, error) {
					msg := scriptor.GetArgument[string](cc, "msg")
					fmt.Println(msg)
					return 0, nil
				})),
	)

	d.Register(
		scriptor.Literal[Source]("say").
			Then(scriptor.Argument[Source, string]("msg", scriptor.Greedy[Source]()).
				Executes(func(cc *scriptor.CommandContext[Source]) (int, error) {
					msg := scriptor.GetArgument[string](cc, "msg")
					return len(msg), nil
				})),
	)

	kick := scriptor.Literal[Source]("kick").
		Then(scriptor.Argument[Source, int]("id", scriptor.IntegerInRange[Source](0, 100)).
			Executes(func(cc *scriptor.CommandContext[Source]) (int, error) {
				id := scriptor.GetArgument[int](cc, "id")
				return id, nil
			}))
	kickNode := d.Register(kick)

	d.Register(
		scriptor.Literal[Source]("alias").
			Then(scriptor.Literal[Source]("kick").Redirect(kickNode)),
	)

	// broadcast forks into the root's own children, so "broadcast echo hi"
	// re-enters the top-level "echo" command once per source the modifier
	// produces, each execution independent and each notified separately.
	d.Register(
		scriptor.Literal[Source]("broadcast").
			Fork(d.Root(), func(cc *scriptor.CommandContext[Source]) ([]Source, error) {
				return []Source{
					{Name: "room-1", Admin: cc.Source().Admin},
					{Name: "room-2", Admin: cc.Source().Admin},
				}, nil
			}),
	)

	d.Register(
		scriptor.Literal[Source]("admin").
			Requires(func(s Source) bool { return s.Admin }).
			Then(scriptor.Literal[Source]("shutdown").
				Executes(func(cc *scriptor.CommandContext[Source]) (int, error) {
					return 0, nil
				})),
	)

	d.Register(
		scriptor.Literal[Source]("tree").
			Executes(func(cc *scriptor.CommandContext[Source]) (int, error) {
				if err := d.PrintTree(nil, scriptor.DumpText); err != nil {
					return 0, err
				}
				return 0, nil
			}),
	)
}
