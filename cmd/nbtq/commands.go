package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: snbt/s, json/j, yaml/y, nbt, nbtle, nbtnet",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: snbt/s, json/j, yaml/y, nbt, nbtle, nbtnet",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nbtq").
		WithSynopsis("nbtq [opts] command [opts]").
		WithDescription("nbtq queries and edits NBT documents with NBT paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtqMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			CountCommand(cfg),
			SetCommand(cfg),
			RemoveCommand(cfg),
			InsertCommand(cfg),
			ConvertCommand(cfg),
			UUIDCommand(cfg),
			DiffCommand(cfg),
			ShellCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-where expr] <path> [files]").
		WithDescription("output the tags a path selects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Count, "count").
		WithAliases("c").
		WithSynopsis("count <path> [files]").
		WithDescription("count the tags a path selects").
		WithRun(func(cc *cli.Context, args []string) error {
			return count(cfg, cc, args)
		})
}

func modifyCommand(mainCfg *MainConfig, name, synopsis, desc string, run func(*ModifyConfig, *cli.Context, []string) error) *cli.Command {
	cfg := &ModifyConfig{MainConfig: mainCfg, At: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, name).
		WithSynopsis(synopsis).
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	return modifyCommand(mainCfg, "set",
		"set [-diff|-patch] <path> <snbt> [file]",
		"set the tags a path selects, creating missing parents",
		set)
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	return modifyCommand(mainCfg, "remove",
		"remove [-diff|-patch] <path> [file]",
		"remove the tags a path selects",
		remove).WithAliases("rm")
}

func InsertCommand(mainCfg *MainConfig) *cli.Command {
	return modifyCommand(mainCfg, "insert",
		"insert [-diff|-patch] [-at index] <path> <snbt> [file]",
		"insert a value into the lists a path selects, appending by default",
		insert)
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("cv").
		WithSynopsis("convert [files]").
		WithDescription("convert documents between formats, see -I and -O").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func UUIDCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UUIDConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.UUID, "uuid").
		WithSynopsis("uuid [<uuid>|<int array>]").
		WithDescription("convert between uuids and int array tags, generating one without argument").
		WithRun(func(cc *cli.Context, args []string) error {
			return uuidCmd(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-t] a b").
		WithDescription("list the changes between two documents as paths").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ShellCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShellConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Shell, "shell").
		WithAliases("sh").
		WithSynopsis("shell [-gops] [file]").
		WithDescription(shellDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return shell(cfg, cc, args)
		})
}

const shellDescription = `shell reads data commands from stdin, one per line, and runs them
against the document in file, or an empty compound.

Commands

  get <path> [<scale>]
  count <path>
  remove <path>
  merge <compound>
  modify <path> set|merge (value <snbt> | from <path>)
  modify <path> append|prepend (value <snbt>... | from <path>)
  modify <path> insert <index> (value <snbt>... | from <path>)
  uuid <path> [<uuid>]
  pos <path> <x> <y> <z>
  move <path> <dx> <dy> <dz>

plus the shell commands

  print        output the document
  save [file]  write the document to file, by default the one loaded
  quit         stop

Errors are reported and the shell continues.`
