package receipt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProcessor answers every request with the same document
type fakeProcessor struct {
	mu       sync.Mutex
	requests []*documentaipb.ProcessRequest
	doc      *documentaipb.Document
	err      error
}

func (f *fakeProcessor) ProcessDocument(_ context.Context, req *documentaipb.ProcessRequest, _ ...gax.CallOption) (*documentaipb.ProcessResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &documentaipb.ProcessResponse{Document: f.doc}, nil
}

func receiptDoc() *documentaipb.Document {
	return &documentaipb.Document{Entities: []*documentaipb.Document_Entity{
		dateEntity("receipt_date", 2024, 3, 1),
		textEntity("supplier_name", "Coolblue"),
		moneyEntity("total_amount", 121, 0),
		moneyEntity("total_tax_amount", 21, 0),
	}}
}

var testConfig = Config{ProjectID: "boekhouding", Location: "eu", ProcessorID: "abc123"}

func TestProcessorName(t *testing.T) {
	assert.Equal(t, "projects/boekhouding/locations/eu/processors/abc123", testConfig.ProcessorName())
}

func TestScan(t *testing.T) {
	proc := &fakeProcessor{doc: receiptDoc()}
	s := NewScannerWithProcessor(testConfig, proc)

	expense, err := s.Scan(context.Background(), []byte("%PDF-1.7 receipt"))
	require.NoError(t, err)
	assert.Equal(t, "Coolblue", expense.Description)
	assert.Equal(t, 100.0, expense.AmountExcl)

	require.Len(t, proc.requests, 1)
	assert.Equal(t, testConfig.ProcessorName(), proc.requests[0].GetName())
	assert.Equal(t, "application/pdf", proc.requests[0].GetRawDocument().GetMimeType())
}

func TestScanRejectsInvalidInput(t *testing.T) {
	s := NewScannerWithProcessor(testConfig, &fakeProcessor{doc: receiptDoc()})

	_, err := s.Scan(context.Background(), []byte("hello"))
	assert.ErrorIs(t, err, ErrInvalidPDF)

	big := make([]byte, MaxDocumentSizeBytes+1)
	copy(big, "%PDF")
	_, err = s.Scan(context.Background(), big)
	assert.ErrorIs(t, err, ErrDocumentTooLarge)
}

func TestScanProcessingError(t *testing.T) {
	s := NewScannerWithProcessor(testConfig, &fakeProcessor{err: errors.New("PERMISSION_DENIED")})

	_, err := s.Scan(context.Background(), []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, ErrProcessingFailed)
}

func writePDFs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4 "+name), 0o600))
	}
}

func TestFindPDFFiles(t *testing.T) {
	dir := t.TempDir()
	writePDFs(t, dir, "a.pdf", "B.PDF")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	files, err := FindPDFFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	single, err := FindPDFFiles(filepath.Join(dir, "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.pdf")}, single)

	_, err = FindPDFFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	writePDFs(t, dir, "1.pdf", "2.pdf", "3.pdf")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kapot.pdf"), []byte("niet echt"), 0o600))

	paths := []string{
		filepath.Join(dir, "1.pdf"),
		filepath.Join(dir, "kapot.pdf"),
		filepath.Join(dir, "2.pdf"),
		filepath.Join(dir, "3.pdf"),
	}

	s := NewScannerWithProcessor(testConfig, &fakeProcessor{doc: receiptDoc()})

	var calls []int
	results := s.ScanFiles(context.Background(), paths, 3, func(done, total int, _ Result) {
		assert.Equal(t, len(paths), total)
		calls = append(calls, done)
	})

	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, paths[i], r.Path)
	}
	assert.ErrorIs(t, results[1].Err, ErrInvalidPDF)

	var scanErr *ScanError
	require.ErrorAs(t, results[1].Err, &scanErr)
	assert.Equal(t, paths[1], scanErr.File)

	assert.Equal(t, []int{1, 2, 3, 4}, calls)
	assert.Len(t, Expenses(results), 3)
}

func TestScanFilesCanceled(t *testing.T) {
	dir := t.TempDir()
	writePDFs(t, dir, "1.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScannerWithProcessor(testConfig, &fakeProcessor{doc: receiptDoc()})
	results := s.ScanFiles(ctx, []string{filepath.Join(dir, "1.pdf")}, 0, nil)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
