package cli

import (
	"path/filepath"
	"testing"
)

func BenchmarkRunnerRun_EndToEnd(b *testing.B) {
	cfg := &Config{
		Input:  filepath.Join("..", "..", "testdata", "person.hcl"),
		OutDir: b.TempDir(),
	}
	runner := newIntegrationRunner()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := runner.Run(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
