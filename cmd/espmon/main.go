package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"espmon/internal/app"
	"espmon/internal/serialport"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := pflag.String("config", "", "override config path (default ~/.config/espmon/config.toml)")
	port := pflag.String("port", "", "serial port to preselect (e.g. /dev/ttyUSB0)")
	baud := pflag.Int("baud", 0, "baud rate (default from config/prefs, 115200 otherwise)")
	list := pflag.BoolP("list", "l", false, "list available serial ports and exit")
	pflag.Parse()

	if *list {
		return listPorts()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Port:       *port,
		Baud:       *baud,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "espmon: %v\n", err)
		return 1
	}
	return 0
}

func listPorts() int {
	ports, err := serialport.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "espmon: %v\n", err)
		return 1
	}
	if len(ports) == 0 {
		fmt.Println("no serial ports found")
		return 0
	}
	for _, p := range ports {
		fmt.Println(p.Label())
	}
	return 0
}
