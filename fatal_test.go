// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask_test

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"code.hybscloud.com/cotask"
	"code.hybscloud.com/kont"
)

// Faults escaping a task body must terminate the process, not propagate
// to the caller. Each test re-executes the test binary and asserts that
// the child aborts with the fatal exit code.

const fatalChildEnv = "COTASK_FATAL_CHILD"

func TestMain(m *testing.M) {
	switch os.Getenv(fatalChildEnv) {
	case "first-step":
		job := cotask.NewJob(kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[struct{}] {
			panic("first-step fault")
		}))
		job.Resume()
		os.Exit(0) // abort must have happened inside Resume
	case "after-yields":
		gen := cotask.NewGenerator[int](cotask.YieldThen(0,
			cotask.YieldThen(1, kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[struct{}] {
				panic("late fault")
			}))))
		gen.Resume()
		gen.Resume()
		gen.Resume()
		os.Exit(0)
	case "foreach":
		cotask.ForEach[int](cotask.YieldThen(7, kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[struct{}] {
			panic("drain fault")
		})), func(int) {})
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func runFatalChild(t *testing.T, mode string) string {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=TestNothing")
	cmd.Env = append(os.Environ(), fatalChildEnv+"="+mode)
	out, err := cmd.CombinedOutput()
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("child exited cleanly, want abort; output:\n%s", out)
	}
	if code := ee.ExitCode(); code != 2 {
		t.Fatalf("child exit code got %d, want 2; output:\n%s", code, out)
	}
	return string(out)
}

func TestFaultOnFirstStepAbortsProcess(t *testing.T) {
	out := runFatalChild(t, "first-step")
	if !strings.Contains(out, "unrecoverable fault in task body") {
		t.Fatalf("missing fault banner in child output:\n%s", out)
	}
	if !strings.Contains(out, "first-step fault") {
		t.Fatalf("missing fault value in child output:\n%s", out)
	}
}

func TestFaultAfterSuccessfulStepsAbortsProcess(t *testing.T) {
	out := runFatalChild(t, "after-yields")
	if !strings.Contains(out, "late fault") {
		t.Fatalf("missing fault value in child output:\n%s", out)
	}
}

func TestFaultInForEachAbortsProcess(t *testing.T) {
	out := runFatalChild(t, "foreach")
	if !strings.Contains(out, "drain fault") {
		t.Fatalf("missing fault value in child output:\n%s", out)
	}
}
