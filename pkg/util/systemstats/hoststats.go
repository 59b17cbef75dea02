// Package systemstats reports what the program has processed alongside resource usage of the process and host
package systemstats

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"awesome-dragon.science/go/colourEnabler/internal/version"
)

// Counter counts processed lines. It is safe for concurrent use, the zero value is ready to use
type Counter struct {
	lines     atomic.Uint64
	rewritten atomic.Uint64
	bytesIn   atomic.Uint64
	bytesOut  atomic.Uint64
}

// Add records a single line, before and after processing
func (c *Counter) Add(before, after string) {
	c.lines.Add(1)
	c.bytesIn.Add(uint64(len(before)))
	c.bytesOut.Add(uint64(len(after)))

	if before != after {
		c.rewritten.Add(1)
	}
}

// Lines returns the number of lines processed and how many of those were changed
func (c *Counter) Lines() (total, rewritten uint64) {
	return c.lines.Load(), c.rewritten.Load()
}

// Bytes returns the number of bytes read and written
func (c *Counter) Bytes() (in, out uint64) {
	return c.bytesIn.Load(), c.bytesOut.Load()
}

func (c *Counter) String() string {
	lines, rewritten := c.Lines()
	in, out := c.Bytes()

	return fmt.Sprintf(
		"Lines: %s (%s rewritten) In: %s Out: %s",
		humanize.Comma(int64(lines)), humanize.Comma(int64(rewritten)), humanize.IBytes(in), humanize.IBytes(out),
	)
}

func getSystemUsageStats() string {
	out := strings.Builder{}
	out.WriteString("CPU Load: ")

	if h, err := cpu.Percent(time.Millisecond*50, false); err != nil || len(h) == 0 {
		out.WriteString("Error ")
	} else {
		fmt.Fprintf(&out, "%.2f%% ", h[0])
	}

	out.WriteString("Memory Usage: ")

	if m, err := mem.VirtualMemory(); err != nil {
		out.WriteString("Error")
	} else {
		fmt.Fprintf(&out, "%s/%s (%.2f%%)", humanize.IBytes(m.Used), humanize.IBytes(m.Total), m.UsedPercent)
	}

	return out.String()
}

func getProcessStats() string {
	memstats := new(runtime.MemStats)
	runtime.ReadMemStats(memstats)

	return fmt.Sprintf("Version: %s Memory Usage: %s", version.Version, humanize.IBytes(memstats.Sys))
}

func getGoStats() string {
	out := strings.Builder{}
	out.WriteString("Goroutines: ")
	out.WriteString(strconv.Itoa(runtime.NumGoroutine()))
	out.WriteString(" Version: ")
	out.WriteString(runtime.Version())

	return out.String()
}

// GetStats returns a string containing what c has counted, statistics of the running process, and the system as a
// whole. c may be nil
func GetStats(c *Counter) string {
	processed := "Lines: 0"
	if c != nil {
		processed = c.String()
	}

	return fmt.Sprintf(
		"Processed: %s\nProcess: %s\nSystem: %s\nGo: %s", processed, getProcessStats(), getSystemUsageStats(), getGoStats(),
	)
}
