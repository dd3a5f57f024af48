package distid

import (
	"bytes"
	"testing"
)

func TestRandomSequenceAddBoundedWraps(t *testing.T) {
	r := RandomSequence(mask48)
	next := r.AddBounded(1)
	if next != 0 {
		t.Fatalf("got %d, want wraparound to 0", next)
	}
}

func TestRandomSequenceTop16BitsAlwaysZero(t *testing.T) {
	r, err := newRandomSequenceFrom(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6}))
	if err != nil {
		t.Fatal(err)
	}
	if uint64(r)>>48 != 0 {
		t.Fatalf("top 16 bits not zero: %x", uint64(r))
	}
	want := uint64(0x010203040506)
	if uint64(r) != want {
		t.Fatalf("got %x, want %x", uint64(r), want)
	}
}

// Over 100 fresh samples, each of the six bytes should average near 127.5
// (+-25); the compound average should land near 127+-7.
func TestRandomSequenceStatisticalProperties(t *testing.T) {
	const n = 100
	var byteSums [6]int
	var compoundSum int
	for i := 0; i < n; i++ {
		r, err := NewRandomSequence()
		if err != nil {
			t.Fatal(err)
		}
		v := uint64(r)
		bs := [6]byte{
			byte(v >> 40), byte(v >> 32), byte(v >> 24),
			byte(v >> 16), byte(v >> 8), byte(v),
		}
		for i, b := range bs {
			byteSums[i] += int(b)
			compoundSum += int(b)
		}
	}
	for i, sum := range byteSums {
		avg := float64(sum) / n
		if avg < 127.5-25 || avg > 127.5+25 {
			t.Errorf("byte %d average %.1f outside [102.5, 152.5]", i, avg)
		}
	}
	compoundAvg := float64(compoundSum) / (n * 6)
	if compoundAvg < 127-7 || compoundAvg > 127+7 {
		t.Errorf("compound average %.1f outside [120, 134]", compoundAvg)
	}
}

func TestSimulateRandomSequence(t *testing.T) {
	r := SimulateRandomSequence(1 << 40)
	if uint64(r) != 1<<40 {
		t.Fatalf("got %x", uint64(r))
	}
}
