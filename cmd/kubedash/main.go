// Command kubedash is a terminal dashboard for browsing Kubernetes
// clusters through kubectl: contexts, namespaces, resources, and the
// operations on them.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/KAYAMAc/tui/internal/app"
	"github.com/KAYAMAc/tui/internal/commands"
	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/logging"
	"github.com/KAYAMAc/tui/internal/messages"
	"github.com/KAYAMAc/tui/internal/types"
	"github.com/KAYAMAc/tui/internal/ui"
)

var (
	// BuildTag is set during build
	BuildTag = "dev"
	// BuildDate is set during build
	BuildDate = "unknown"
)

var (
	kubeconfigFlag string
	contextFlag    string
	namespaceFlag  string
	themeFlag      string
	logFileFlag    string
	logLevelFlag   string
	logFormatFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "kubedash",
	Short: "Terminal dashboard for Kubernetes",
	Long: `kubedash - terminal dashboard for Kubernetes

Browse contexts, namespaces and resources, and run or stage kubectl
operations on them. All cluster access goes through the kubectl binary;
kubedash never talks to the API server directly.

Navigation: enter drills in, esc goes back, / filters, r refreshes,
1-5 switch the listed resource kind, q quits.
`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&kubeconfigFlag, "kubeconfig", "", "Path to kubeconfig file (default: $HOME/.kube/config)")
	rootCmd.Flags().StringVar(&contextFlag, "context", "", "Start in this kubectl context")
	rootCmd.Flags().StringVar(&namespaceFlag, "namespace", "", "Start in this namespace (implies the current context if --context is unset)")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "charm",
		"Color theme ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "Write logs to this file (empty: logging disabled)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormatFlag, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kubedash version %s (built %s)\n", BuildTag, BuildDate)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for kubedash.

Bash:
  $ source <(kubedash completion bash)

Zsh:
  $ kubedash completion zsh > "${fpath[1]}/_kubedash"

Fish:
  $ kubedash completion fish | source

PowerShell:
  PS> kubedash completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	})
}

func runDashboard(cmd *cobra.Command, args []string) error {
	// Silence klog output from client-go; the dashboard owns the
	// terminal and stray log lines corrupt the display.
	klog.InitFlags(nil)
	flag.Set("logtostderr", "false")
	flag.Set("stderrthreshold", "FATAL")
	flag.Set("v", "0")
	defer klog.Flush()

	if err := logging.Init(logging.Config{
		FilePath:   logFileFlag,
		Level:      logging.ParseLevel(logLevelFlag),
		Format:     logging.ParseFormat(logFormatFlag),
		MaxSizeMB:  10,
		MaxBackups: 3,
	}); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	if err := k8s.CheckAvailable(); err != nil {
		return err
	}
	if err := commands.ValidateCatalog(); err != nil {
		return messages.WrapError(err, "operation catalog")
	}

	// A starting namespace needs a context to live in; fall back to the
	// kubeconfig's current context the way kubectl itself would.
	if namespaceFlag != "" && contextFlag == "" {
		current, err := k8s.GetCurrentContext(kubeconfigFlag)
		if err != nil {
			return messages.WrapError(err, "--namespace needs a context")
		}
		contextFlag = current
	}

	theme := ui.GetTheme(themeFlag)
	client := k8s.NewClient(kubeconfigFlag, "")

	// Nothing to browse without contexts; fail before the alt screen.
	if _, err := client.ListContexts(cmd.Context()); err != nil {
		return messages.WrapError(err, "context discovery")
	}

	appCtx := types.NewAppContext(theme, client)

	logging.Info("dashboard starting",
		"version", BuildTag,
		"context", contextFlag,
		"namespace", namespaceFlag)

	model := app.NewModel(appCtx, app.Options{
		Context:   contextFlag,
		Namespace: namespaceFlag,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
