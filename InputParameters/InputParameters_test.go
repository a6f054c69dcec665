package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
########################################
Title: "Gauss rules"
Source: compute
Solver: eigensym
Precision: 12
Requests:
  - Family: legendre
    Orders: [3, 5]
    Interval: [0, 2]
  - Family: jacobi
    Orders: [4]
    Alpha: 0.5
    Beta: -0.25
    Check: true
  - Family: legendre
    Orders: [7]
########################################
`)
	ip := &InputParameters{}
	require.NoError(t, ip.Parse(data))
	ip.Print()
	assert.Equal(t, "Gauss rules", ip.Title)
	assert.Equal(t, "compute", ip.Source)
	assert.Equal(t, "eigensym", ip.Solver)
	assert.Equal(t, 12, ip.Precision)
	require.Len(t, ip.Requests, 3)
	assert.Equal(t, []int{3, 5}, ip.Requests[0].Orders)
	assert.Equal(t, []float64{0, 2}, ip.Requests[0].Interval)
	assert.Equal(t, 0.5, ip.Requests[1].Alpha)
	assert.Equal(t, -0.25, ip.Requests[1].Beta)
	assert.True(t, ip.Requests[1].Check)
	assert.False(t, ip.Requests[0].Check)
	assert.Equal(t, []string{"jacobi", "legendre"}, ip.Families())
}

func TestParseErrors(t *testing.T) {
	for _, data := range []string{
		"Requests:\n  - Orders: [3]\n",
		"Requests:\n  - Family: legendre\n",
		"Requests:\n  - Family: legendre\n    Orders: [3]\n    Interval: [0, 1, 2]\n",
		"Requests: [",
	} {
		ip := &InputParameters{}
		assert.Error(t, ip.Parse([]byte(data)), data)
	}
}
