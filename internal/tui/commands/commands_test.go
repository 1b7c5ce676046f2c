package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/hrportal/internal/config"
	"github.com/javiermolinar/hrportal/internal/content"
	"github.com/javiermolinar/hrportal/internal/payslip"
	"github.com/javiermolinar/hrportal/internal/portal"
)

func testDocument() payslip.Document {
	return payslip.Document{
		Employee:     "Asha Rao",
		CurrencyCode: "INR",
		Symbol:       "₹",
		Slip:         content.Default().Payslip,
	}
}

func TestExportPayslip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	msg := ExportPayslip(dir, testDocument())()
	exported, ok := msg.(PayslipExportedMsg)
	if !ok {
		t.Fatalf("msg = %T, want PayslipExportedMsg", msg)
	}
	if filepath.Base(exported.Path) != "payslip-march-2025.pdf" {
		t.Errorf("path = %q, want payslip-march-2025.pdf", exported.Path)
	}
	if _, err := os.Stat(exported.Path); err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
}

func TestExportPayslip_Error(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	msg := ExportPayslip(filepath.Join(blocker, "sub"), testDocument())()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
	if !strings.Contains(errMsg.Err.Error(), "exporting payslip") {
		t.Errorf("error = %v, want exporting payslip prefix", errMsg.Err)
	}
}

func TestCopyPayslip(t *testing.T) {
	var got string
	write := func(s string) error {
		got = s
		return nil
	}

	msg := CopyPayslip(write, testDocument())()
	if _, ok := msg.(PayslipCopiedMsg); !ok {
		t.Fatalf("msg = %T, want PayslipCopiedMsg", msg)
	}
	if got != payslip.Text(testDocument()) {
		t.Errorf("clipboard = %q, want payslip text", got)
	}
}

func TestCopyPayslip_Error(t *testing.T) {
	boom := errors.New("no display")
	msg := CopyPayslip(func(string) error { return boom }, testDocument())()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Errorf("error = %v, want wrapped %v", errMsg.Err, boom)
	}

	msg = CopyPayslip(nil, testDocument())()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("nil writer msg = %T, want ErrMsg", msg)
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hrportal", "config.toml")

	msg := SaveConfig(config.Default(), path)()
	saved, ok := msg.(ConfigSavedMsg)
	if !ok {
		t.Fatalf("msg = %T, want ConfigSavedMsg", msg)
	}
	if saved.Path != path {
		t.Errorf("path = %q, want %q", saved.Path, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat config: %v", err)
	}
}

func TestStatus(t *testing.T) {
	msg := Status("hello", portal.NoticeSuccess)()
	status, ok := msg.(StatusMsgCmd)
	if !ok {
		t.Fatalf("msg = %T, want StatusMsgCmd", msg)
	}
	if status.Msg != "hello" || status.Level != portal.NoticeSuccess {
		t.Errorf("status = %+v", status)
	}
}
