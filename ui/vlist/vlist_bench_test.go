package vlist

import (
	"fmt"
	"testing"
)

type nopElement struct{}

func (nopElement) AddClass(string)    {}
func (nopElement) SetHeight(int)      {}
func (nopElement) SetOffset(int, int) {}
func (nopElement) Show()              {}
func (nopElement) Hide()              {}

type nopContainer struct{ height int }

func (c *nopContainer) Height() int     { return c.height }
func (c *nopContainer) SetHeight(h int) { c.height = h }
func (c *nopContainer) Append(Element)  {}
func (c *nopContainer) Empty()          {}

type nopParent struct{ height, scrollTop int }

func (p *nopParent) Height() int                   { return p.height }
func (p *nopParent) ScrollTop() int                { return p.scrollTop }
func (p *nopParent) SetScrollTop(y int)            { p.scrollTop = y }
func (p *nopParent) AddClass(string)               {}
func (p *nopParent) NewContainer(string) Container { return &nopContainer{} }

// BenchmarkScroll measures one line-by-line scroll step. The cost should not
// depend on the dataset size.
func BenchmarkScroll(b *testing.B) {
	sizes := []int{1_000, 100_000, 1_000_000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("rows=%d", size), func(b *testing.B) {
			data := make([]int, size)
			p := &nopParent{height: 300}
			l := New(p, func(int, int) Element { return nopElement{} })
			l.SetData(data)

			limit := size * l.RowHeight()
			st := 0
			b.ResetTimer()
			for range b.N {
				st += l.RowHeight()
				if st >= limit {
					st = 0
				}
				l.HandleScroll(st)
			}
		})
	}
}

// BenchmarkSetData measures replacing the dataset, including the initial fill.
func BenchmarkSetData(b *testing.B) {
	sizes := []int{1_000, 1_000_000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("rows=%d", size), func(b *testing.B) {
			data := make([]int, size)
			l := New(&nopParent{height: 300}, func(int, int) Element { return nopElement{} })

			b.ResetTimer()
			for range b.N {
				l.SetData(data)
			}
		})
	}
}
