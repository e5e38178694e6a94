package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/ssg/trid"
	"github.com/ssg/trid/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// mockGeneratorService implements primary.GeneratorService for testing
type mockGeneratorService struct {
	generateFn func(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error)
	lastReq    primary.GenerateRequest
}

func (m *mockGeneratorService) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	m.lastReq = req
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return &primary.GenerateResponse{
		IDs: []trid.ID{trid.MustParse("76558242278"), trid.MustParse("10000000146")},
	}, nil
}

// mockLedgerService implements primary.LedgerService for testing
type mockLedgerService struct {
	issued  []*primary.IssuedNumber
	listErr error
	cleared bool
}

func (m *mockLedgerService) ListIssued(ctx context.Context, filters primary.LedgerFilters) ([]*primary.IssuedNumber, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.issued, nil
}

func (m *mockLedgerService) CountIssued(ctx context.Context) (int, error) {
	return len(m.issued), nil
}

func (m *mockLedgerService) ClearIssued(ctx context.Context) (int, error) {
	n := len(m.issued)
	m.issued = nil
	m.cleared = true
	return n, nil
}

// ============================================================================
// Generate Tests
// ============================================================================

func TestGenerateAdapter_PrintsOnePerLine(t *testing.T) {
	mock := &mockGeneratorService{}
	var buf bytes.Buffer
	adapter := NewGenerateAdapter(mock, &buf)

	if err := adapter.Generate(context.Background(), 2, true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if buf.String() != "76558242278\n10000000146\n" {
		t.Errorf("output = %q", buf.String())
	}
	if mock.lastReq.Count != 2 || !mock.lastReq.Unique {
		t.Errorf("request = %+v, want Count=2 Unique=true", mock.lastReq)
	}
}

func TestGenerateAdapter_ServiceError(t *testing.T) {
	mock := &mockGeneratorService{
		generateFn: func(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
			return nil, errors.New("count must be at least 1 (got 0)")
		},
	}
	var buf bytes.Buffer
	adapter := NewGenerateAdapter(mock, &buf)

	err := adapter.Generate(context.Background(), 0, false)
	if err == nil || !strings.Contains(err.Error(), "count must be at least 1") {
		t.Errorf("expected service error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// ============================================================================
// Validate Tests
// ============================================================================

func TestValidateAdapter_AllValid(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewValidateAdapter(&buf, false)

	if err := adapter.Validate([]string{"76558242278", "10000000146"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "✓ 76558242278\n✓ 10000000146\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestValidateAdapter_ReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewValidateAdapter(&buf, false)

	err := adapter.Validate([]string{"76558242278", "04948892948", "7B558242278"})
	if err == nil || err.Error() != "2 of 3 numbers invalid" {
		t.Errorf("error = %v, want '2 of 3 numbers invalid'", err)
	}

	out := buf.String()
	for _, want := range []string{
		"✓ 76558242278",
		`✗ "04948892948": first digit cannot be zero`,
		`✗ "7B558242278": 'B' at position 2 is not a digit`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidateAdapter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewValidateAdapter(&buf, true)

	if err := adapter.Validate([]string{"14948892946"}); err == nil {
		t.Error("expected error for invalid number")
	}
	if buf.Len() != 0 {
		t.Errorf("quiet mode wrote output: %q", buf.String())
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7655", "must be 11 digits, got 4 bytes"},
		{" 7655824227", "' ' at position 1 is not a digit"},
		{"04948892948", "first digit cannot be zero"},
		{"14948892946", "final checksum digit does not match"},
		{"14948892937", "initial checksum digit does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Describe(trid.Validate(tt.input), tt.input); got != tt.want {
				t.Errorf("Describe = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Ledger Tests
// ============================================================================

func TestLedgerAdapter_List(t *testing.T) {
	mock := &mockLedgerService{issued: []*primary.IssuedNumber{
		{
			ID:        trid.MustParse("76558242278"),
			BatchID:   "2f1e6c1a-6b7e-4c55-9a43-6f4d3b0e8c21",
			CreatedAt: time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC),
		},
	}}
	var buf bytes.Buffer
	adapter := NewLedgerAdapter(mock, &buf)

	if err := adapter.List(context.Background(), "", 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NUMBER", "76558242278", "2f1e6c1a-6b7e-4c55-9a43-6f4d3b0e8c21", "2026-10-01 12:30:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLedgerAdapter_ListAlignsColumns(t *testing.T) {
	mock := &mockLedgerService{issued: []*primary.IssuedNumber{
		{ID: trid.MustParse("76558242278"), BatchID: "b1"},
		{ID: trid.MustParse("10000000146"), BatchID: "a-much-longer-batch"},
	}}
	var buf bytes.Buffer
	adapter := NewLedgerAdapter(mock, &buf)

	if err := adapter.List(context.Background(), "", 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	col := strings.Index(lines[0], "ISSUED")
	for _, line := range lines[2:] {
		if strings.Index(line, "0001-01-01") != col {
			t.Errorf("ISSUED column misaligned:\n%s", buf.String())
		}
	}
}

func TestLedgerAdapter_ListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewLedgerAdapter(&mockLedgerService{}, &buf)

	if err := adapter.List(context.Background(), "", 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No issued numbers found") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLedgerAdapter_CountAndClear(t *testing.T) {
	mock := &mockLedgerService{issued: []*primary.IssuedNumber{
		{ID: trid.MustParse("76558242278")},
		{ID: trid.MustParse("10000000146")},
	}}
	var buf bytes.Buffer
	adapter := NewLedgerAdapter(mock, &buf)
	ctx := context.Background()

	if err := adapter.Count(ctx); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if buf.String() != "2\n" {
		t.Errorf("Count output = %q, want %q", buf.String(), "2\n")
	}

	buf.Reset()
	if err := adapter.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if !mock.cleared {
		t.Error("ClearIssued not called")
	}
	if buf.String() != "✓ Cleared 2 issued numbers\n" {
		t.Errorf("Clear output = %q", buf.String())
	}
}
