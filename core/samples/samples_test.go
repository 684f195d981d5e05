package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-bpo/core/extract"
)

func TestGenerateAndRead(t *testing.T) {
	dir := t.TempDir()

	names, err := Generate(dir)
	require.NoError(t, err)
	assert.Equal(t, List(), names)

	// Generating twice is fine; existing files are kept.
	_, err = Generate(dir)
	require.NoError(t, err)

	for _, name := range names {
		data, err := Read(dir, name)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestReadRejectsUnknownNames(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(dir)
	require.NoError(t, err)

	_, err = Read(dir, "../customers.csv")
	assert.Error(t, err)
}

func TestSamplesAreDetectable(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(dir)
	require.NoError(t, err)

	want := map[string]string{
		"garnishment_order_sample.txt":    extract.TypeGarnishmentOrder,
		"court_notice_sample.txt":         extract.TypeCourtNotice,
		"account_freeze_order_sample.txt": extract.TypeAccountFreezeOrder,
	}
	for name, docType := range want {
		data, err := Read(dir, name)
		require.NoError(t, err)
		assert.Equal(t, docType, extract.DetectDocumentType(string(data)), name)
	}
}
