package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"linkforge/config"
	"linkforge/queue"
	"linkforge/types"

	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	app.Name = "linkforge"
	app.Usage = "Move ordered lists of JSON values through an SQS queue."
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "config.yaml",
			Usage: "path to the YAML config file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "drain",
			Usage: "read the queue until it is idle and print its values in order",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "reverse", Usage: "print the values last to first"},
				cli.BoolFlag{Name: "unique", Usage: "also print the number of distinct values"},
			},
			Action: drain,
		},
		{
			Name:   "publish",
			Usage:  "send every non-blank input line to the queue, in order",
			Action: publish,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (*config.Config, log15.Logger, *sqs.SQS, error) {
	conf, err := config.LoadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	logger, err := newLogger(conf)
	if err != nil {
		return nil, nil, nil, err
	}
	client, err := queue.NewSQS(conf.Aws)
	if err != nil {
		return nil, nil, nil, err
	}
	return conf, logger, client, nil
}

func newLogger(conf *config.Config) (log15.Logger, error) {
	lvl, err := conf.Level()
	if err != nil {
		return nil, err
	}
	handler := log15.StderrHandler
	if conf.LogFilePath != "" {
		fileHandler, err := log15.FileHandler(conf.LogFilePath, log15.LogfmtFormat())
		if err != nil {
			return nil, fmt.Errorf("could not open log file: %w", err)
		}
		handler = log15.MultiHandler(handler, fileHandler)
	}

	logger := log15.New("service", "linkforge")
	logger.SetHandler(log15.LvlFilterHandler(lvl, handler))
	return logger, nil
}

func drain(c *cli.Context) error {
	conf, logger, client, err := setup(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("Draining queue")
	l, err := types.FromSource[any](ctx, queue.NewSource[any](client, conf, logger))
	if err != nil {
		return fmt.Errorf("could not drain queue: %w", err)
	}
	logger.Info("Drained queue", "length", l.Len())

	return render(os.Stdout, l, c.Bool("reverse"), c.Bool("unique"))
}

func publish(c *cli.Context) error {
	conf, logger, client, err := setup(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	input := os.Stdin
	if len(conf.InputPath) != 0 {
		input, err = os.Open(conf.InputPath)
		if err != nil {
			return err
		}
		defer input.Close()
	} else {
		fmt.Fprintln(os.Stderr, "Write one value per line, end with Ctrl-D")
	}

	lines, err := readInput(ctx, input)
	if err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	sent, err := queue.PublishList(ctx, queue.NewPublisher(client, conf, logger), toValues(lines))
	if err != nil {
		return err
	}
	logger.Info("Published input", "sent", sent)
	return nil
}
