// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package urlpattern

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkMatchLiteral(b *testing.B) {
	p := MustCompile("/movies")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Match("/movies")
	}
}

func BenchmarkMatchIdentifiers(b *testing.B) {
	p := MustCompile("/studios/:studio.id/movies/:id")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Match("/studios/20/movies/473")
	}
}

func BenchmarkMatchOptionalGroup(b *testing.B) {
	p := MustCompile("[/studios/:studio.id]/movies/:id")
	b.Run("wrapped", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			p.Match("/studios/20/movies/473")
		}
	})
	b.Run("bare", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			p.Match("/movies/473")
		}
	})
}

func BenchmarkMatchMiss(b *testing.B) {
	p := MustCompile("/studios/:studio.id/movies/:id")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Match("/studios/20/reviews/473")
	}
}

func BenchmarkGenerate(b *testing.B) {
	p := MustCompile("/studios/:studio.id/movies/:id")
	values := Values{"studio": Values{"id": "20"}, "id": "473"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Generate(values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	reg := New()
	for i := range 50 {
		if _, err := reg.Register(fmt.Sprintf("route-%d", i), fmt.Sprintf("/resource%d/:id", i)); err != nil {
			b.Fatal(err)
		}
	}
	ctx := context.Background()

	b.Run("first", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := reg.Resolve(ctx, "/resource0/473"); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("last", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := reg.Resolve(ctx, "/resource49/473"); err != nil {
				b.Fatal(err)
			}
		}
	})
}
