package proc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// TracerPid returns the PID of the process attached to this one with
// ptrace, or 0 if no tracer is attached.
func (p *Proc) TracerPid() (int, error) {
	b, err := os.ReadFile(fmt.Sprintf("%s/%d/status", p.procfs, p.pid))
	if err != nil {
		return 0, err
	}
	return tracerPid(string(b))
}

// status(5): one "Name:\tvalue" pair per line.
func tracerPid(status string) (int, error) {
	for _, line := range strings.Split(status, "\n") {
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, ErrParseFailProcStatus
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, ErrParseFailProcStatus
		}
		return pid, nil
	}
	return 0, ErrParseFailProcStatus
}
