package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reframe-systems/tesseract-planning/pkg/composer"
	"github.com/reframe-systems/tesseract-planning/pkg/nodes"
)

var validateCmd = &cobra.Command{
	Use:   "validate [node-config.yaml]",
	Short: "Validate a node configuration document",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type nodeConfigFile struct {
	Kind   string          `yaml:"kind"`
	Name   string          `yaml:"name"`
	Config composer.Config `yaml:"config"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var file nodeConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing node config: %w", err)
	}
	if file.Kind == "" {
		file.Kind = nodes.DiscreteContactCheckKind
	}
	if file.Name == "" {
		file.Name = file.Kind
	}

	factory := composer.NewFactory()
	nodes.RegisterDefaults(factory)

	task, err := factory.Build(file.Kind, file.Name, file.Config)
	if err != nil {
		return err
	}
	fmt.Printf("ok: %s (%s), inputs=%v conditional=%v\n",
		task.Name(), file.Kind, task.InputKeys(), task.IsConditional())
	return nil
}
