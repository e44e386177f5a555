package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterCounts(t *testing.T) {
	r := New()
	r.Start(5)

	r.Complete("a.jpg", true)
	r.Complete("b.jpg", true)
	r.Complete("c.jpg", false)
	r.Skip("d.png")
	r.Error("e.jpg", errors.New("boom"))
	r.Finish()

	stats := r.Stats()
	assert.Equal(t, Stats{Total: 5, WithGPS: 2, WithoutGPS: 1, NoExif: 1, Errors: 1}, stats)
	assert.Equal(t, 5, stats.Processed())
}

func TestReporterStartResets(t *testing.T) {
	r := New()
	r.Start(1)
	r.Complete("a.jpg", true)

	r.Start(2)
	assert.Equal(t, Stats{Total: 2}, r.Stats())
}
