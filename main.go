package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hypebeast/go-osc/osc"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/schollz/freqchart/internal/catalog"
	"github.com/schollz/freqchart/internal/chart"
	"github.com/schollz/freqchart/internal/input"
	"github.com/schollz/freqchart/internal/model"
	"github.com/schollz/freqchart/internal/remote"
	"github.com/schollz/freqchart/internal/storage"
	"github.com/schollz/freqchart/internal/types"
	"github.com/schollz/freqchart/internal/views"
)

var (
	Version = "dev"

	// Command-line configuration
	config struct {
		catalog  string
		band     string
		stateDir string
		noState  bool
		theme    string
		preset   string
		oscPort  int
		debug    string
		dump     string // Path to file for periodic terminal dumps
	}

	exportConfig struct {
		output string
		band   string
		preset string
		freq   float64
		zoom   float64
		pan    float64
		width  int
		height int
	}

	lookupBand string
)

// DumpTickMsg triggers periodic dumps to file
type DumpTickMsg struct{}

var rootCmd = &cobra.Command{
	Use:   "freqchart",
	Short: "An interactive radio frequency allocation chart",
	Long: `freqchart draws a zoomable, pannable chart of radio frequency
allocations in the terminal.

Features:
• Built-in HF, VHF, UHF and SHF allocation tables, or your own JSON catalog
• Tuned frequency marker with keyboard, mouse and OSC control
• Click an allocation for its service, range and bandwidth
• PNG export of any view`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runFreqchart,
}

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "List the bands in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runBands,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <MHz>",
	Short: "Show the allocations containing a frequency",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the saved view presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved view preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsDelete,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render one chart frame to a PNG file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.catalog, "catalog", "",
		"JSON band catalog (empty uses the built-in tables)")
	rootCmd.PersistentFlags().StringVarP(&config.debug, "log", "l", "",
		"Write debug logs to specified file (empty disables)")
	rootCmd.PersistentFlags().StringVar(&config.stateDir, "state", defaultStateDir(),
		"Directory for saved view state, presets and PNG exports")
	rootCmd.PersistentFlags().StringVar(&config.theme, "theme", chart.DefaultThemeName,
		fmt.Sprintf("Color theme %v", chart.ThemeNames()))
	rootCmd.Flags().StringVarP(&config.band, "band", "b", "",
		"Band to show at startup")
	rootCmd.Flags().StringVarP(&config.preset, "preset", "p", "",
		"Load this saved view preset at startup")
	rootCmd.Flags().BoolVar(&config.noState, "no-state", false,
		"Do not load or save view state")
	rootCmd.Flags().IntVar(&config.oscPort, "osc-port", 0,
		"Listen for OSC control messages on this UDP port (0 disables)")
	rootCmd.Flags().StringVarP(&config.dump, "dump", "d", "",
		"Write terminal frames to specified file every 10 seconds (empty disables)")

	lookupCmd.Flags().StringVarP(&lookupBand, "band", "b", "", "Only search this band")

	exportCmd.Flags().StringVarP(&exportConfig.output, "output", "o", "chart.png", "Output PNG file")
	exportCmd.Flags().StringVarP(&exportConfig.band, "band", "b", "", "Band to render (default first band)")
	exportCmd.Flags().StringVarP(&exportConfig.preset, "preset", "p", "", "Start from this saved view preset")
	exportCmd.Flags().Float64Var(&exportConfig.freq, "freq", 0, "Tuned frequency in MHz (default band midpoint)")
	exportCmd.Flags().Float64Var(&exportConfig.zoom, "zoom", 1, "Zoom level")
	exportCmd.Flags().Float64Var(&exportConfig.pan, "pan", 0, "Pan offset in MHz")
	exportCmd.Flags().IntVar(&exportConfig.width, "width", chart.DefaultExportWidth, "Image width in pixels")
	exportCmd.Flags().IntVar(&exportConfig.height, "height", chart.DefaultExportHeight, "Image height in pixels")

	presetsCmd.AddCommand(presetsDeleteCmd)
	rootCmd.AddCommand(bandsCmd, lookupCmd, presetsCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".freqchart"
	}
	return filepath.Join(dir, "freqchart")
}

func loadCatalog() (*catalog.Catalog, error) {
	if config.catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(config.catalog)
}

func checkTheme() error {
	if _, ok := chart.ThemeByName(config.theme); !ok {
		return fmt.Errorf("unknown theme %q (have %v)", config.theme, chart.ThemeNames())
	}
	return nil
}

func setupLogging() (io.Closer, error) {
	if config.debug == "" {
		// send log to io.Discard
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(config.debug, "debug")
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	// Set log flags to include file and line number
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return f, nil
}

func runFreqchart(cmd *cobra.Command, args []string) error {
	logFile, err := setupLogging()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.Println("Debug logging enabled")

	if err := checkTheme(); err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	app, err := initialModel(cat, cmd.Flags().Changed("band"), cmd.Flags().Changed("theme"))
	if err != nil {
		return err
	}
	if app.dumpFile != nil {
		defer func() {
			if err := app.dumpFile.Close(); err != nil {
				log.Printf("Error closing dump file: %v", err)
			}
		}()
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	setupCleanupOnExit(p)

	// Start OSC server after p is created but before p.Run()
	if config.oscPort > 0 {
		d, err := remote.NewDispatcher(p.Send)
		if err != nil {
			return err
		}
		server := &osc.Server{Addr: fmt.Sprintf(":%d", config.oscPort), Dispatcher: d}
		go func() {
			log.Printf("Starting OSC server on port %d", config.oscPort)
			if err := server.ListenAndServe(); err != nil {
				log.Printf("Error starting OSC server: %v", err)
			}
		}()
	}

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if final, ok := finalModel.(*ChartApp); ok {
		storage.DoSave(final.model)
	}
	return nil
}

func initialModel(cat *catalog.Catalog, bandProvided, themeProvided bool) (*ChartApp, error) {
	m := model.NewModel(cat, config.stateDir)
	m.NoSave = config.noState
	m.Profile = termenv.EnvColorProfile()

	if !config.noState {
		// Try to load saved state
		if err := storage.LoadState(m, config.stateDir); err == nil {
			log.Printf("Loaded saved state successfully from %s", config.stateDir)
		} else {
			log.Printf("No saved state found or error loading from %s: %v", config.stateDir, err)
		}
	}

	if config.preset != "" {
		if err := storage.LoadPreset(m, config.preset); err != nil {
			return nil, err
		}
		log.Printf("Loaded preset %s", config.preset)
	}
	if bandProvided && !m.SelectBand(config.band) {
		return nil, fmt.Errorf("unknown band %q (have %v)", config.band, cat.IDs())
	}
	if themeProvided {
		m.SetTheme(config.theme)
	}

	app := &ChartApp{model: m}

	// Open dump file if path is provided
	if config.dump != "" {
		f, err := os.Create(config.dump)
		if err != nil {
			log.Printf("Error opening dump file %s: %v", config.dump, err)
		} else {
			app.dumpFile = f
			log.Printf("Terminal dump enabled: writing to %s every 10 seconds", config.dump)
		}
	}
	return app, nil
}

// ChartApp wraps the model and implements the tea.Model interface
type ChartApp struct {
	model    *model.Model
	dumpFile *os.File
}

// tickDump schedules the next DumpTickMsg for periodic dumps
func tickDump() tea.Cmd {
	return tea.Tick(10*time.Second, func(time.Time) tea.Msg {
		return DumpTickMsg{}
	})
}

func (a *ChartApp) Init() tea.Cmd {
	if a.dumpFile != nil {
		return tickDump()
	}
	return nil
}

func (a *ChartApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.TermWidth = msg.Width
		a.model.TermHeight = msg.Height
		a.model.Help.Width = msg.Width
		// geometry changed, the old pointer position no longer maps
		a.model.PointerLeave()
		return a, nil

	case tea.KeyMsg:
		return a, input.HandleKeyInput(a.model, msg)

	case tea.MouseMsg:
		return a, input.HandleMouseInput(a.model, msg)

	case input.RemoteMsg:
		return a, input.HandleRemoteMsg(a.model, msg)

	case input.ExportDoneMsg:
		return a, input.HandleExportDone(a.model, msg)

	case input.ClearStatusMsg:
		input.HandleClearStatus(a.model, msg)
		return a, nil

	case DumpTickMsg:
		// Write current view to dump file
		if a.dumpFile != nil {
			timestamp := time.Now().Format("2006-01-02 15:04:05")
			fmt.Fprintf(a.dumpFile, "\n=== Frame at %s ===\n", timestamp)
			fmt.Fprintf(a.dumpFile, "%s\n", a.View())
			a.dumpFile.Sync()
		}
		return a, tickDump()
	}

	// cursor blink and other textinput messages
	if a.model.Editing() {
		var cmd tea.Cmd
		a.model.EntryInput, cmd = a.model.EntryInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *ChartApp) View() string {
	return views.RenderChartView(a.model)
}

func setupCleanupOnExit(p *tea.Program) {
	// Quit through the event loop so state is saved on the way out
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-c
		log.Printf("Received signal, quitting")
		p.Quit()
	}()
}

func runBands(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "RANGE", "ALLOCATIONS", "USES")
	for _, b := range cat.Bands() {
		t.Row(b.ID, b.DisplayName, b.RangeLabel, strconv.Itoa(len(b.Allocations)), b.UsesDescription)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	freq, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid frequency %q: %w", args[0], err)
	}
	if lookupBand != "" {
		if _, ok := cat.Band(lookupBand); !ok {
			return fmt.Errorf("unknown band %q (have %v)", lookupBand, cat.IDs())
		}
	}

	found := 0
	for _, match := range cat.Lookup(freq) {
		if lookupBand != "" && match.Band.ID != lookupBand {
			continue
		}
		d := chart.DetailsFor(match.Allocation)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%s)\t%s\tbandwidth %s\n",
			match.Band.DisplayName, d.Name, d.Service, d.FrequencyRangeLabel, d.BandwidthLabel)
		found++
	}
	if found == 0 {
		return fmt.Errorf("no allocation contains %s", chart.FormatTunedFrequency(freq))
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	names, err := storage.ListPresets(config.stateDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no presets in %s\n", filepath.Join(config.stateDir, storage.PresetDir))
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runPresetsDelete(cmd *cobra.Command, args []string) error {
	if err := storage.DeletePreset(config.stateDir, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted preset %s\n", args[0])
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := checkTheme(); err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	// a preset supplies the starting view and theme; explicit flags win
	band := cat.First()
	view := types.NewViewState(band)
	theme, _ := chart.ThemeByName(config.theme)
	if exportConfig.preset != "" {
		m := model.NewModel(cat, config.stateDir)
		if err := storage.LoadPreset(m, exportConfig.preset); err != nil {
			return err
		}
		band, view = m.Band(), m.View
		if !flags.Changed("theme") {
			theme = m.Renderer().Theme
		}
	}
	if exportConfig.band != "" {
		b, ok := cat.Band(exportConfig.band)
		if !ok {
			return fmt.Errorf("unknown band %q (have %v)", exportConfig.band, cat.IDs())
		}
		band = b
		view = types.NewViewState(band)
	}

	if flags.Changed("freq") && !view.SetTunedFrequency(exportConfig.freq) {
		return fmt.Errorf("invalid frequency %v", exportConfig.freq)
	}
	if exportConfig.preset == "" || flags.Changed("zoom") {
		view.ZoomLevel = types.ClampZoom(exportConfig.zoom)
	}
	if exportConfig.preset == "" || flags.Changed("pan") {
		view.Pan(exportConfig.pan)
	}

	scene := chart.Scene{Band: band, View: view, Hover: -1}
	if err := chart.ExportPNG(exportConfig.output, scene, theme, exportConfig.width, exportConfig.height); err != nil {
		return err
	}
	w := chart.ResolveWindow(band, view)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %s)\n", exportConfig.output,
		exportConfig.width, exportConfig.height, chart.FormatRange(w.Start, w.End))
	return nil
}
