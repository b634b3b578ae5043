package queryregistry

import (
	"flag"
	"testing"

	"xdao.co/nftwire/querier"
)

func testBackend(name string, usage Usage, target *string) Backend {
	return Backend{
		Name:  name,
		Usage: usage,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(target, name+"-target", "", "test target")
		},
		Open: func() (querier.Querier, func() error, error) {
			return querier.Func(func(request []byte) ([]byte, error) {
				return []byte(*target), nil
			}), nil, nil
		},
	}
}

func TestRegisterValidation(t *testing.T) {
	if err := Register(Backend{}); err == nil {
		t.Fatal("expected error for empty backend")
	}
	if err := Register(Backend{Name: "incomplete", Usage: UsageCLI}); err == nil {
		t.Fatal("expected error for backend without RegisterFlags/Open")
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	var target string
	b := testBackend("dup-test", UsageCLI, &target)
	if err := Register(b); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(b); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestListFiltersByUsage(t *testing.T) {
	var cliTarget, daemonTarget string
	MustRegister(testBackend("cli-only-test", UsageCLI, &cliTarget))
	MustRegister(testBackend("daemon-only-test", UsageDaemon, &daemonTarget))

	has := func(names []string, want string) bool {
		for _, n := range names {
			if n == want {
				return true
			}
		}
		return false
	}

	cliNames := Names(UsageCLI)
	if !has(cliNames, "cli-only-test") || has(cliNames, "daemon-only-test") {
		t.Fatalf("CLI names wrong: %v", cliNames)
	}
	daemonNames := Names(UsageDaemon)
	if !has(daemonNames, "daemon-only-test") || has(daemonNames, "cli-only-test") {
		t.Fatalf("daemon names wrong: %v", daemonNames)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, _, err := Open("no-such-backend", UsageCLI); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenUsageMismatch(t *testing.T) {
	var target string
	MustRegister(testBackend("usage-mismatch-test", UsageDaemon, &target))
	if _, _, err := Open("usage-mismatch-test", UsageCLI); err == nil {
		t.Fatal("expected error for usage mismatch")
	}
}

func TestOpenUsesParsedFlags(t *testing.T) {
	var target string
	MustRegister(testBackend("flags-test", UsageCLI, &target))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs, UsageCLI)
	if err := fs.Parse([]string{"-flags-test-target", "endpoint-a"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	q, closeFn, err := Open("flags-test", UsageCLI)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if closeFn != nil {
		defer closeFn()
	}
	resp, err := q.RawQuery(nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if string(resp) != "endpoint-a" {
		t.Fatalf("expected flag value to reach backend, got %q", resp)
	}
}

func TestOpenWithConfig(t *testing.T) {
	var target string
	MustRegister(testBackend("config-test", UsageCLI, &target))

	q, closeFn, err := OpenWithConfig("config-test", UsageCLI, map[string]string{
		"config-test-target": "endpoint-b",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if closeFn != nil {
		defer closeFn()
	}
	resp, err := q.RawQuery(nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if string(resp) != "endpoint-b" {
		t.Fatalf("expected config value to reach backend, got %q", resp)
	}
}

func TestOpenWithConfigUnknownKey(t *testing.T) {
	var target string
	MustRegister(testBackend("badkey-test", UsageCLI, &target))

	_, _, err := OpenWithConfig("badkey-test", UsageCLI, map[string]string{
		"no-such-flag": "x",
	})
	if err == nil {
		t.Fatal("expected error for unknown config key")
	}
}
