// Command pagingdemo shows five colored pages behind a carousel navigation
// bar. Badges appear on every other title, and two seconds in, their counts
// change to show a live update arriving from another goroutine.
package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/config"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/constants"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/locale"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/navigation"
)

var titles = []string{"IDK", "Messages", "Home", "Friends", "Stories"}

type options struct {
	configPath  string
	language    string
	logLevel    string
	logPath     string
	cannoli     bool
	flipButtons bool
	seed        uint64
	updateAfter time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "pagingdemo",
		Short: "Paging carousel demo",
		Long: `pagingdemo runs the paging carousel with five pages.

Swipe the pages or tap a title to move between them. Left/Right or L1/R1
page with a keyboard or controller, A selects the current page and B quits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./config.toml, then the user config dir)")
	flags.StringVarP(&opts.language, "lang", "l", "", "language tag for titles, e.g. fr or de-CH")
	flags.StringVar(&opts.logLevel, "log-level", "", "application log level: debug|info|warn|error")
	flags.StringVar(&opts.logPath, "log-file", "", "also write logs to this file")
	flags.BoolVar(&opts.cannoli, "cannoli", false, "use the Cannoli theme")
	flags.BoolVar(&opts.flipButtons, "flip-buttons", false, "map A and B directly instead of the Nintendo layout")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for page colors (0 picks one)")
	flags.DurationVar(&opts.updateAfter, "update-after", 2*time.Second, "delay before the badge update")

	return cmd
}

func loadConfig(path string) (config.Config, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	return config.LoadDefault()
}

func run(opts options) error {
	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.logPath != "" {
		pagingcarousel.SetLogPath(opts.logPath)
	}
	if err := pagingcarousel.Init(pagingcarousel.Options{
		Config:          &cfg,
		IsCannoli:       opts.cannoli,
		FlipFaceButtons: opts.flipButtons,
	}); err != nil {
		return err
	}
	defer pagingcarousel.Close()

	if opts.logLevel != "" {
		pagingcarousel.SetRawLogLevel(opts.logLevel)
	}
	logger := pagingcarousel.GetLogger()
	if cfgPath != "" {
		logger.Info("Loaded config", "path", cfgPath)
	}

	translator, err := newTranslator(cfg.Locale, opts.language)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	items := withBadges(demoItems(), func(i int) int { return 2 * (i + 1) })
	panes := make([]pagingcarousel.Pane, len(items))
	for i := range panes {
		panes[i] = colorPane(colorful.Hsv(rng.Float64()*360, 0.55, 0.85))
	}

	accessory := navigation.NewAccessory(geometry.Size{Width: 24, Height: 24}, []byte(constants.IconGear), func() {
		logger.Info("Settings accessory tapped")
	})

	container := pagingcarousel.NewContainer(panes, items,
		pagingcarousel.WithSettings(cfg.Navigation.Settings()),
		pagingcarousel.WithTranslator(translator),
		pagingcarousel.WithLeftAccessory(accessory),
		pagingcarousel.WithRepeatTiming(cfg.Input.RepeatDelay, cfg.Input.RepeatInterval),
	)
	container.OnSettle = func(page int) {
		logger.Debug("Page settled", "page", page, "title", titles[page])
	}

	update := time.AfterFunc(opts.updateAfter, func() {
		container.PostNavigationItems(withBadges(demoItems(), func(i int) int { return 50 * (i + 1) }))
		logger.Debug("Posted badge update")
	})
	defer update.Stop()

	result, err := container.Run()
	if errors.Is(err, pagingcarousel.ErrCancelled) {
		logger.Info("Demo cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Page selected", "page", result.Page, "title", titles[result.Page])
	return nil
}

func newTranslator(lc config.LocaleConfig, override string) (*locale.Translator, error) {
	lang := lc.Language
	if env := os.Getenv(constants.LanguageEnvVar); env != "" {
		lang = env
	}
	if override != "" {
		lang = override
	}

	translator, err := locale.New(lang, locale.WithLogger(pagingcarousel.GetLogger()))
	if err != nil {
		return nil, err
	}
	for _, file := range lc.MessageFiles {
		if err := translator.LoadMessageFile(file); err != nil {
			return nil, err
		}
	}
	return translator, nil
}

func demoItems() []navigation.Item {
	items := make([]navigation.Item, len(titles))
	for i, title := range titles {
		items[i] = navigation.Item{Title: title}
	}
	return items
}

// withBadges gives even indices a badge of count(i); odd ones keep theirs.
func withBadges(items []navigation.Item, count func(i int) int) []navigation.Item {
	for i, item := range items {
		if i%2 == 0 {
			items[i] = item.WithBadgeCount(count(i))
		}
	}
	return items
}

func colorPane(c colorful.Color) pagingcarousel.Pane {
	r, g, b := c.Clamped().RGB255()
	return pagingcarousel.PaneFunc(func(renderer *sdl.Renderer, frame sdl.Rect) {
		_ = renderer.SetDrawColor(r, g, b, 0xff)
		_ = renderer.FillRect(&frame)
	})
}
