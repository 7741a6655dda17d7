package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"cjting.me/sim8086/cpu"
)

func newLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if debug {
		log.Level = logrus.DebugLevel
	}
	return log
}

func rawBytes(sim *cpu.CPU, addr uint32, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", sim.Read8(addr+uint32(i)))
	}
	return strings.Join(parts, " ")
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
