// This file is part of GopherGBA.
//
// GopherGBA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherGBA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherGBA.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophergba/cartridgeloader"
	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/debugger"
	"github.com/jetsetilly/gophergba/debugger/terminal"
	"github.com/jetsetilly/gophergba/debugger/terminal/colorterm"
	"github.com/jetsetilly/gophergba/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophergba/digest"
	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware"
	"github.com/jetsetilly/gophergba/logger"
	"github.com/jetsetilly/gophergba/modalflag"
	"github.com/jetsetilly/gophergba/performance"
	"github.com/jetsetilly/gophergba/performance/limiter"
	"github.com/jetsetilly/gophergba/prefs"
	"github.com/jetsetilly/gophergba/recorder"
	"github.com/jetsetilly/gophergba/savefile"
	"github.com/jetsetilly/gophergba/scripting"
	"github.com/jetsetilly/gophergba/statsview"
	"github.com/jetsetilly/gophergba/version"
	"github.com/jetsetilly/gophergba/wavwriter"
)

// exit values
const (
	exitOK    = 0
	exitArgs  = 10
	exitError = 20
)

func main() {
	// the first ctrl-c cancels the context. modes are expected to finish
	// gracefully when that happens
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(launch(ctx, os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value to
// be used with os.Exit()
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := modalflag.NewModes(output, args)
	md.AddSubModes("RUN", "PERFORMANCE", "DEBUG", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "PERFORMANCE":
		err = perform(md)
	case "DEBUG":
		err = debug(ctx, md)
	case "SCRIPT":
		err = script(ctx, md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitError
	}

	return exitOK
}

// machineArgs are the flags shared by every mode that creates an emulation
type machineArgs struct {
	bios  *string
	log   *bool
	prefs *string
}

func addMachineArgs(md *modalflag.Modes) machineArgs {
	return machineArgs{
		bios:  md.AddString("bios", "", "BIOS image to use instead of the built-in BIOS"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
		prefs: md.AddString("prefs", "", "preferences to override for this session. eg. hardware.skipbios::true"),
	}
}

// newMachine creates the emulation and inserts the cartridge named by the
// single remaining argument. the save file for the cartridge is read
// automatically
func newMachine(md *modalflag.Modes, margs machineArgs, output io.Writer, options ...hardware.Option) (*hardware.GBA, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *margs.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *margs.bios != "" {
		data, err := os.ReadFile(*margs.bios)
		if err != nil {
			return nil, err
		}
		options = append(options, hardware.WithBIOS(data, true))
	}

	// command line preferences are consumed when the preferences are loaded
	// by the environment
	prefs.PushCommandLineStack(*margs.prefs)
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "! unused preferences: %s\n", unused)
	}
	if err != nil {
		return nil, err
	}

	g, err := hardware.NewGBA(env, options...)
	if err != nil {
		return nil, err
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	err = cartload.Load()
	if err != nil {
		return nil, err
	}

	err = g.LoadROM(cartload.Data)
	if err != nil {
		return nil, err
	}

	pth, err := savefile.Path(g.Cart())
	if err != nil {
		return nil, err
	}
	err = savefile.Read(g.Mem, pth)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// writeSave writes the backup memory of the cartridge to disk if it has
// changed
func writeSave(g *hardware.GBA) error {
	pth, err := savefile.Path(g.Cart())
	if err != nil {
		return err
	}
	return savefile.Write(g.Mem, pth)
}

func run(ctx context.Context, md *modalflag.Modes) (rerr error) {
	md.NewMode()

	margs := addMachineArgs(md)
	frames := md.AddInt("frames", 0, "number of frames to run for. zero to run until interrupted")
	fpsCap := md.AddBool("fpscap", true, "cap speed to the refresh rate of the console")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	record := md.AddString("record", "", "record keypad input to file")
	playback := md.AddString("playback", "", "playback keypad input from file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *record != "" && *playback != "" {
		return fmt.Errorf("cannot record and playback at the same time")
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(ctx, md.Output())
	}

	var options []hardware.Option

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		options = append(options, hardware.WithAudioSink(aw))
	}

	g, err := newMachine(md, margs, md.Output(), options...)
	if err != nil {
		return err
	}

	defer func() {
		err := g.EndMixing()
		if err != nil && rerr == nil {
			rerr = err
		}
		err = writeSave(g)
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	var plb *recorder.Playback

	if *record != "" || *playback != "" {
		dig := digest.NewVideo(g.Mem)
		g.Video.SetRenderer(dig)

		if *record != "" {
			rec, err := recorder.NewRecorder(*record, g.Cart(), dig)
			if err != nil {
				return err
			}
			defer func() {
				err := rec.End()
				if err != nil && rerr == nil {
					rerr = err
				}
			}()
			err = g.Input.AttachRecorder(rec)
			if err != nil {
				return err
			}
		} else {
			plb, err = recorder.NewPlayback(*playback)
			if err != nil {
				return err
			}
			err = plb.Attach(g.Cart(), dig)
			if err != nil {
				return err
			}
			err = g.Input.AttachPlayback(plb)
			if err != nil {
				return err
			}
		}
	}

	var lim *limiter.FPSLimiter
	if *fpsCap {
		lim = limiter.NewFPSLimiter(performance.RefreshRate)
		defer lim.Stop()
	}

	fmt.Fprintln(md.Output(), g.Cart().String())

	for n := 0; *frames <= 0 || n < *frames; n++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if plb != nil && plb.EndFrame(g.Video.Frame) {
			fmt.Fprintf(md.Output(), "! playback completed (%s)\n", plb)
			return nil
		}

		err := g.RunFrame()
		if err != nil {
			return err
		}

		if lim != nil {
			lim.Wait()
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	margs := addMachineArgs(md)
	frames := md.AddInt("frames", 600, "number of frames to run for")
	profile := md.AddString("profile", "none", "profiling to perform: none, cpu, mem, trace (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	g, err := newMachine(md, margs, md.Output())
	if err != nil {
		return err
	}

	return performance.Check(md.Output(), prof, g, *frames)
}

func debug(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	margs := addMachineArgs(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	g, err := newMachine(md, margs, md.Output())
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch *termType {
	case "COLOR":
		if colorterm.Available() {
			term = colorterm.NewColorTerminal(debugger.SingleKeys)
			break
		}
		fmt.Fprintln(md.Output(), "! color terminal not available. using plain terminal")
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg, err := debugger.NewDebugger(g, term)
	if err != nil {
		return err
	}

	err = dbg.Start(ctx)
	if err != nil {
		return err
	}

	return writeSave(g)
}

func script(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	margs := addMachineArgs(md)
	scriptFile := md.AddString("script", "", "lua script to run against the cartridge")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *scriptFile == "" {
		return curated.Errorf("script: %v", "no script file specified")
	}

	g, err := newMachine(md, margs, md.Output())
	if err != nil {
		return err
	}

	scr := scripting.NewScript(g, md.Output())
	defer scr.Close()

	err = scr.RunFile(ctx, *scriptFile)
	if err != nil {
		return err
	}

	return writeSave(g)
}
