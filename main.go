// aura 俯视角悬停高亮演示
//
// Usage:
//
//	aura                    - 启动默认关卡
//	aura --level <id>       - 启动指定关卡（data/levels/<id>.yaml）
//	aura --verbose          - 输出调试日志
//	aura --trace            - 通过 OTLP HTTP 导出悬停切换 span
//	aura levels             - 列出内置关卡
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gonewx/aura/pkg/app"
	"github.com/gonewx/aura/pkg/config"
	"github.com/gonewx/aura/pkg/embedded"
	"github.com/gonewx/aura/pkg/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagLevel   string
	flagTrace   bool
	flagScale   float64

	flagHighlight  float64
	flagShowCursor bool
	flagLockCursor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aura",
	Short: "Top-down hover highlight demo",
	Long: `aura runs a small top-down level where the actor under the cursor
is highlighted. Move with WASD or the arrow keys, F3 toggles the debug
panel, F11 toggles fullscreen.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flagLevel, "level", config.DefaultLevelID, "Level ID to load")
	rootCmd.Flags().BoolVar(&flagTrace, "trace", false, "Export hover transitions via OTLP HTTP")
	rootCmd.Flags().Float64Var(&flagScale, "window-scale", 1, "Initial window scale")
	rootCmd.Flags().Float64Var(&flagHighlight, "highlight", 0.6, "Hover highlight intensity 0-1 (saved)")
	rootCmd.Flags().BoolVar(&flagShowCursor, "show-cursor", true, "Show the system cursor (saved)")
	rootCmd.Flags().BoolVar(&flagLockCursor, "lock-cursor", false, "Capture the cursor inside the window (saved)")

	rootCmd.AddCommand(levelsCmd)
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List built-in levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		embedded.Init(dataFS)
		ids, err := config.ListLevelIDs()
		if err != nil {
			return err
		}
		for _, id := range ids {
			level, err := config.LoadLevelConfig(config.LevelPath(id))
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s (invalid: %v)\n", id, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s, %d actors\n", id, level.Name, len(level.Actors))
		}
		return nil
	},
}

func run(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Debugf("[Main] .env 未加载: %v", err)
	}

	log.SetReportTimestamp(true)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	embedded.Init(dataFS)

	ctx := context.Background()
	if flagTrace {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warnf("[Main] 追踪初始化失败，继续运行: %v", err)
			flagTrace = false
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Errorf("[Main] 关闭追踪失败: %v", err)
				}
			}()
		}
	}

	if flagScale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", flagScale)
	}

	appCfg := app.Config{
		Level: flagLevel,
		Trace: flagTrace,
	}
	// 只有显式传入的标志才覆盖已保存的设置
	if cmd.Flags().Changed("highlight") {
		appCfg.HighlightIntensity = &flagHighlight
	}
	if cmd.Flags().Changed("show-cursor") {
		appCfg.ShowCursor = &flagShowCursor
	}
	if cmd.Flags().Changed("lock-cursor") {
		appCfg.LockCursor = &flagLockCursor
	}

	application, err := app.NewApp(appCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Warnf("[Main] 退出时保存设置失败: %v", err)
		}
	}()

	ebiten.SetWindowSize(int(float64(config.GameWindowWidth)*flagScale), int(float64(config.GameWindowHeight)*flagScale))
	ebiten.SetWindowTitle("Aura")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(application); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
