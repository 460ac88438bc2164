// SPDX-License-Identifier: MIT

package computer_test

import (
	"fmt"
	"testing"

	"github.com/StuttgarterDotNet/contextual-encoders/computer"
	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

func benchColumn(b *testing.B, workers int) {
	b.Helper()
	t, _ := hierarchy.NewTree("root")
	for g := 0; g < 10; g++ {
		group := fmt.Sprintf("g%d", g)
		_ = t.AddChild(group, "")
		for l := 0; l < 10; l++ {
			_ = t.AddChild(fmt.Sprintf("%s-%d", group, l), group)
		}
	}
	wup, err := measure.NewWuPalmer(t)
	if err != nil {
		b.Fatal(err)
	}
	c, err := computer.New(wup, nil, computer.WithWorkers(workers))
	if err != nil {
		b.Fatal(err)
	}

	values := make([]string, 200)
	for i := range values {
		values[i] = fmt.Sprintf("g%d-%d,g%d-%d", i%10, i%7, (i+3)%10, i%9)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Compute(values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompute_Sequential(b *testing.B) { benchColumn(b, 1) }
func BenchmarkCompute_Parallel4(b *testing.B)  { benchColumn(b, 4) }
