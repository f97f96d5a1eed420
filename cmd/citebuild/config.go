package main

import (
	"fmt"

	"github.com/Piestar/citationbuilder/internal/config"
	"github.com/Piestar/citationbuilder/internal/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  citebuild config                       # Show all config
  citebuild config default-style         # Get specific value
  citebuild config default-style mla7    # Set value
  citebuild config library-path ~/works  # Set library location

Keys:
  default-style  Citation style used when --style is omitted (apa6, mla7)
  library-path   Path to the works library directory
  mailto         Contact address sent with doi.org requests`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	DefaultStyle string `json:"default_style,omitempty"`
	LibraryPath  string `json:"library_path,omitempty"`
	Mailto       string `json:"mailto,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("default-style: %s\n", cfg.DefaultStyle)
			fmt.Printf("library-path:  %s\n", cfg.LibraryPath)
			fmt.Printf("mailto:        %s\n", cfg.Mailto)
		} else {
			outputJSON(ConfigResponse{
				DefaultStyle: cfg.DefaultStyle,
				LibraryPath:  cfg.LibraryPath,
				Mailto:       cfg.Mailto,
			})
		}
		return nil
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		var value string
		switch key {
		case "default-style":
			value = cfg.DefaultStyle
		case "library-path":
			value = cfg.LibraryPath
		case "mailto":
			value = cfg.Mailto
		default:
			exitWithError(ExitError, "unknown configuration key: %s", key)
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{key: value})
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "default-style":
		if _, ok := style.ByName(value); !ok {
			exitWithError(ExitError, "unknown style: %s (supported: apa6, mla7)", value)
		}
		cfg.DefaultStyle = value
	case "library-path":
		cfg.LibraryPath = value
	case "mailto":
		cfg.Mailto = value
	default:
		exitWithError(ExitError, "unknown configuration key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("%s set to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}
	return nil
}
