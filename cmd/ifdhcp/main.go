package main

import (
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/luscis/ifdhcp/pkg/agent"
	"github.com/luscis/ifdhcp/pkg/config"
	"github.com/luscis/ifdhcp/pkg/libol"
)

func run() {
	c := config.NewAgent()

	libol.SetLogger(c.Log.File, c.Log.Verbose)
	libol.ShowVersion()

	a := agent.NewAgent(c)
	a.Initialize()
	a.Start()
	libol.SdNotify()
	libol.Wait()
	libol.SdStopping()
	a.Stop()
}

const monitor = "-monitor"

func main() {
	log.SetFlags(0)
	var newArgs []string

	exePath := os.Args[0]
	isMonitor := false

	for _, v := range os.Args[1:] {
		if v == monitor {
			isMonitor = true
		} else {
			newArgs = append(newArgs, v)
		}
	}
	if !isMonitor {
		run()
		return
	}

	libol.Info("%s with %s", exePath, newArgs)
	for {
		cmd := exec.Command(exePath, newArgs...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Env = os.Environ()
		if err := cmd.Start(); err != nil {
			libol.Error("Exec: %s", err)
			break
		}
		_ = cmd.Wait()
		time.Sleep(2 * time.Second)
	}
}
