package cyclehud

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"cyclehud/controller"
	"cyclehud/db"
	"cyclehud/hud"
	"cyclehud/input/parser"
	"cyclehud/input/ports"
	"cyclehud/model"
	"cyclehud/settings"
	"cyclehud/sound"
	"cyclehud/web"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate the game host and drive the cycle controller",
	Long: `Reads raw key-event lines ("key: 33, state: down") from stdin or a serial
device, classifies them against the configured bindings, and acts on the
controller's responses: slot timers, equips, sounds, notifications.
Lines of the form "fav: <slot-key> <form-spec> <name>" toggle cycle membership
the way a menu hotkey would.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := settings.FromViper(viper.GetViper())
		if storagePath != "" {
			cfg.StorePath = storagePath
		}

		store, err := db.ConnectOrFallback(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("could not open fallback cycle store: %w", err)
		}
		defer store.Close()

		var ch <-chan string
		switch device {
		case "":
			names, err := ports.GetAvailableDevices()
			if err == nil && len(names) > 0 {
				log.Printf("Suggested devices: %+v ", names)
			}
			log.Print("Reading key events from stdin...")

			ch = ports.ReadFile(os.Stdin)
		default:
			var closer func()
			ch, closer, err = ports.OpenDevice(device)
			if err != nil {
				return fmt.Errorf("could not open device %s: %w", device, err)
			}
			defer closer()
		}

		var player *sound.Player
		var sfx hud.Sound
		if !noSound {
			player = sound.NewPlayer()
			sfx = player
		}

		var ctrl *controller.Controller
		display := hud.New(cfg.EquipDelay, func(slot model.Action) {
			equipped := ctrl.EquippedInSlot(slot)
			if equipped.IsEmpty() {
				return
			}
			slog.Info("equipping item", "slot", slot.String(), "item", equipped.Name)
			if player != nil {
				player.Play("equip")
			}
		}, sfx)
		defer display.StopAll()

		ctrl = controller.New(store, cfg, display, display)

		if !disableInterface {
			go func() {
				if err := web.StartServer(port, ctrl, display); err != nil {
					slog.Error("status server stopped", "error", err)
				}
			}()
		}

		log.Print("Main loop")
		eventLoop(ch, ctrl, display, verbose)

		return nil
	},
}

// eventLoop consumes feed lines until the channel closes.
func eventLoop(ch <-chan string, ctrl *controller.Controller, display *hud.SimHUD, enableLogs bool) {
	for line := range ch {
		if entry, key, ok := parseFavoriteLine(line); ok {
			result := ctrl.HandleMenuEvent(key, entry)
			if enableLogs {
				slog.Info("menu event", "item", entry.Name, "result", result.String())
			}

			continue
		}

		parsed, err := parser.ParseLine(line)
		if err != nil {
			log.Printf("Got warning: %s\nline: '%s'", err.Error(), line)
		}

		if parsed != nil {
			button := model.ButtonState{IsDown: parsed.Pressed, IsUp: !parsed.Pressed}
			resp := ctrl.HandleKeyEvent(parsed.Key, button)
			if enableLogs {
				slog.Info("key event", "key", parsed.Key,
					"handled", resp.Handled,
					"start", resp.StartTimer.String(),
					"stop", resp.StopTimer.String())
			}

			display.Apply(resp)
		}
	}

	log.Println("Event feed closed, bailing out")
}

// parseFavoriteLine handles the "fav: <slot-key> <form-spec> <name...>" lines
// the simulation uses in place of real menu hover events.
func parseFavoriteLine(line string) (model.CycleEntry, uint32, bool) {
	var key uint32
	var formSpec, name string

	n, err := fmt.Sscanf(line, "fav: %d %s %s", &key, &formSpec, &name)
	if err != nil || n != 3 {
		return model.CycleEntry{}, 0, false
	}

	return model.CycleEntry{FormSpec: formSpec, Name: name, Kind: model.KindMisc, Color: model.ColorDefault()}, key, true
}

var (
	device           string
	storagePath      string
	port             int
	disableInterface bool
	noSound          bool
	verbose          bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(
		&device,
		"device",
		"d",
		"",
		"Serial device to read key events from (default: stdin)")

	runCmd.Flags().StringVarP(
		&storagePath,
		"out",
		"o",
		"",
		"Path to the cycle store (overrides config)")

	runCmd.Flags().IntVarP(
		&port, "port", "p", 3000,
		"Port on which the status server should be watching")

	runCmd.Flags().BoolVar(&disableInterface,
		"no-interface",
		false,
		"If provided, no status server will be run")

	runCmd.Flags().BoolVar(&noSound,
		"no-sound",
		false,
		"Disable feedback sounds")

	runCmd.Flags().BoolVarP(&verbose,
		"verbose",
		"v",
		false,
		"If provided, debug output will be shown")
}
