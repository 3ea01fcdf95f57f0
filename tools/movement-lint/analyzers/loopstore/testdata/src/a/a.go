package a

import "context"

type Dataset struct {
	Entities []Entity
}

func (d *Dataset) Clone() *Dataset { return d }

type Entity struct {
	ID   string
	Name string
}

type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, name string) (*Dataset, error)
	SaveSnapshot(ctx context.Context, name string, ds *Dataset) error
}

func BuildIndex[T any](records []T) map[string]T { return nil }

func badStore(ctx context.Context, names []string, store SnapshotStore) {
	for _, name := range names {
		ds, _ := store.LoadSnapshot(ctx, name) // want "LoadSnapshot called inside loop - load the snapshot once before the loop"
		_ = store.SaveSnapshot(ctx, name, ds)  // want "SaveSnapshot called inside loop - apply every change, then save once"
	}
}

func badIndex(ds *Dataset, ids []string) {
	for i := 0; i < len(ids); i++ {
		index := BuildIndex(ds.Entities) // want "BuildIndex called inside loop - build the index once before the loop"
		_ = index[ids[i]]
		_ = BuildIndex[Entity](ds.Entities) // want "BuildIndex called inside loop"
		_ = ds.Clone()                      // want "Clone called inside loop - clone the dataset once before the loop"
	}
}

func good(ds *Dataset, ids []string) {
	index := BuildIndex(ds.Entities)
	for _, id := range ids {
		_ = index[id]
	}
}

func goodClosure(ds *Dataset, ids []string) []func() map[string]Entity {
	var builders []func() map[string]Entity
	for range ids {
		builders = append(builders, func() map[string]Entity {
			return BuildIndex(ds.Entities)
		})
	}
	return builders
}
