package cmds

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/animatic/anim"
	"github.com/matt-g-everett/animatic/api"
	"github.com/matt-g-everett/animatic/scene"
	"github.com/matt-g-everett/animatic/stream"
)

var (
	playScenes []string
	playConfig string
	playFade   int

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play scenes to an MQTT display sink at their display interval.",
		Long: "Play builds the animations described by one or more yaml scene files " +
			"and streams them to the MQTT sink in order, cross-fading between " +
			"consecutive scenes.",
		Run: func(cmd *cobra.Command, args []string) {
			var animations []anim.Animation
			for _, path := range playScenes {
				sc, err := scene.Load(path)
				if err != nil {
					color.Red(err.Error())
					os.Exit(1)
				}

				a, err := sc.Build()
				if err != nil {
					color.Red(err.Error())
					os.Exit(1)
				}
				animations = append(animations, a)
			}

			config, err := stream.LoadConfig(playConfig)
			if err != nil {
				color.Red(err.Error())
				os.Exit(1)
			}

			options := mqtt.NewClientOptions().
				AddBroker(config.Mqtt.URL).
				SetClientID(config.Mqtt.ClientID).
				SetUsername(config.Mqtt.Username).
				SetPassword(config.Mqtt.Password).
				SetKeepAlive(30 * time.Second).
				SetPingTimeout(5 * time.Second)
			client := mqtt.NewClient(options)

			streamer := stream.NewStreamer(client, config.Mqtt.Topic)
			if err := streamer.Connect(); err != nil {
				color.Red(err.Error())
				os.Exit(1)
			}

			// Stop playback cleanly on SIGINT/SIGTERM
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigs
				cancel()
			}()
			defer signal.Stop(sigs)

			player := anim.NewPlayer(streamer)
			if len(animations) == 1 {
				err = player.Play(ctx, animations[0])
			} else {
				err = player.PlayAll(ctx, animations, playFade)
			}
			if err != nil && err != context.Canceled {
				color.Red(err.Error())
				os.Exit(1)
			}
		},
	}
)

func init() {
	playCmd.Flags().StringArrayVar(&playScenes, "scene", []string{"scene.yaml"}, "Yaml scene file describing an animation. Repeatable.")
	playCmd.Flags().StringVar(&playConfig, "config", "config.yaml", "Yaml config file for the MQTT sink.")
	playCmd.Flags().IntVar(&playFade, "fade", 10, "Frames to cross-fade between consecutive scenes.")
	RootCmd.AddCommand(playCmd)
}

var (
	serveDir  string
	serveAddr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of rendered html animations for preview.",
		Run: func(cmd *cobra.Command, args []string) {
			a := api.NewApi(serveDir, serveAddr)
			if err := a.Serve(); err != nil {
				color.Red(err.Error())
				os.Exit(1)
			}
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveDir, "dir", ".", "Directory of rendered animations to serve.")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3000", "Listen address.")
	RootCmd.AddCommand(serveCmd)
}
