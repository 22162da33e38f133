package domain

import "testing"

type row struct {
	ID   int64
	Name string
}

func TestPartitionSplitsOnID(t *testing.T) {
	items := []row{{0, "a"}, {5, "b"}, {0, "c"}, {9, "d"}}
	b := Partition(items, func(r row) int64 { return r.ID })

	if len(b.Insert) != 2 || len(b.Update) != 2 {
		t.Fatalf("split sizes: insert=%d update=%d", len(b.Insert), len(b.Update))
	}
	if b.Insert[0].Name != "a" || b.Insert[1].Name != "c" {
		t.Fatalf("insert side wrong: %+v", b.Insert)
	}
	if b.Update[0].Name != "b" || b.Update[1].Name != "d" {
		t.Fatalf("update side wrong: %+v", b.Update)
	}
}

func TestPartitionCoversInputExactly(t *testing.T) {
	items := []row{{1, "x"}, {0, "y"}, {-3, "z"}}
	b := Partition(items, func(r row) int64 { return r.ID })
	if len(b.Insert)+len(b.Update) != len(items) {
		t.Fatalf("insert+update must cover input: %d+%d != %d", len(b.Insert), len(b.Update), len(items))
	}
	// negative ids are not persisted rows
	if len(b.Update) != 1 || b.Update[0].Name != "x" {
		t.Fatalf("only positive ids belong to update: %+v", b.Update)
	}
}

func TestPartitionEmpty(t *testing.T) {
	b := Partition(nil, func(r row) int64 { return r.ID })
	if b.Insert != nil || b.Update != nil {
		t.Fatalf("empty input should yield empty batch, got %+v", b)
	}
}
