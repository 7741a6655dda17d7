package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"cjting.me/sim8086/cpu"
	"cjting.me/sim8086/decoder"
)

var debugFlag *bool
var segFlag *uint
var offFlag *uint

// stop after this many instructions, 0 means run to the end of the image
var maxFlag *int

func main() {
	debugFlag = flag.Bool("debug", false, "enable debug mode")
	segFlag = flag.Uint("seg", uint(cpu.DefaultLoadSegment), "load segment")
	offFlag = flag.Uint("off", uint(cpu.DefaultLoadOffset), "load offset")
	maxFlag = flag.Int("max", 0, "max instructions to decode")
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println("usage: ./sim8086 [-debug] [-seg N] [-off N] [-max N] <binary>")
		os.Exit(0)
	}

	log := newLogger(*debugFlag)
	pp.ColoringEnabled = term.IsTerminal(int(os.Stdout.Fd()))

	if *segFlag > 0xffff || *offFlag > 0xffff {
		log.Fatalf("load address %x:%x does not fit in 16 bits", *segFlag, *offFlag)
	}

	file := flag.Arg(0)
	buf, err := os.ReadFile(file)
	if err != nil {
		log.Fatalln(err)
	}

	if err := checkImage(uint16(*offFlag), len(buf)); err != nil {
		log.WithError(err).Fatalf("could not load %s", file)
	}

	sim := cpu.New()
	if err := sim.LoadCOM(buf, uint16(*segFlag), uint16(*offFlag)); err != nil {
		log.WithError(err).Fatalf("could not load %s", file)
	}

	log.WithFields(logrus.Fields{
		"file": file,
		"size": len(buf),
		"cs":   fmt.Sprintf("%04x", sim.CS),
		"ip":   fmt.Sprintf("%04x", sim.IP),
	}).Info("loaded")

	count, err := sweep(sim, log, os.Stdout, len(buf), *maxFlag, *debugFlag)
	if err != nil {
		if *debugFlag {
			log.Errorf("%+v", err)
		}
		log.WithError(errors.Wrapf(err, "after %d instructions", count)).Fatal("decode failed")
	}

	reportDone(log, sim, count)
}

func reportDone(log logrus.FieldLogger, sim *cpu.CPU, count int) {
	log.WithFields(logrus.Fields{
		"count": count,
		"regs":  sim.Registers.String(),
	}).Info("done")
}

var errImageTooLarge = errors.New("image does not fit in one segment")

// checkImage rejects images that would run past the end of the code
// segment. IP wraps at 64 KiB, so the tail of such an image is never
// reached by a linear sweep.
func checkImage(offset uint16, size int) error {
	if int(offset)+size > 0x10000 {
		return errors.Wrapf(errImageTooLarge, "%d bytes at offset %04x", size, offset)
	}
	return nil
}

// sweep decodes linearly from CS:IP until it has walked past the loaded
// image, decoding fails, or limit instructions were decoded.
func sweep(sim *cpu.CPU, log logrus.FieldLogger, out io.Writer, size int, limit int, dump bool) (int, error) {
	// every instruction takes at least one byte
	if limit <= 0 {
		limit = size
	}
	limit = min(limit, size)

	count := 0
	pos := 0
	for count < limit && pos < size {
		ip := sim.IP
		addr := sim.FetchAddress()

		inst, err := decoder.Step(sim, log)
		if err != nil {
			return count, err
		}
		count += 1
		pos += inst.Len()

		fmt.Fprintf(out, "%04x:%04x  %-17s  %+v\n", sim.CS, ip, rawBytes(sim, addr, inst.Len()), inst)

		if dump {
			pp.Fprintln(out, inst)
		}
	}

	return count, nil
}
