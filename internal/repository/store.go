package repository

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/skill-connect/internal/seed"
	"github.com/hashicorp/go-memdb"
)

const (
	tableWorker   = "worker"
	tableJob      = "job"
	tableEmployer = "employer"

	indexID       = "id"
	indexPosition = "position"
	indexSkill    = "skill"
	indexDistrict = "district"
	indexStatus   = "status"
)

// seqBase leaves room on both sides so records can be prepended or appended
// without renumbering.
const seqBase uint64 = 1 << 40

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record id already exists")
)

// row is implemented by every stored table row.
type row interface {
	seq() uint64
}

func positionKey(seq uint64) string {
	return fmt.Sprintf("%020d", seq)
}

func schema() *memdb.DBSchema {
	id := &memdb.IndexSchema{Name: indexID, Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}}
	position := &memdb.IndexSchema{Name: indexPosition, Unique: true, Indexer: &memdb.StringFieldIndex{Field: "Position"}}

	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableWorker: {
				Name: tableWorker,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:       id,
					indexPosition: position,
					indexSkill: {
						Name:         indexSkill,
						AllowMissing: true,
						Indexer:      &memdb.StringSliceFieldIndex{Field: "Skills"},
					},
					indexDistrict: {
						Name:         indexDistrict,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "District"},
					},
				},
			},
			tableJob: {
				Name: tableJob,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:       id,
					indexPosition: position,
					indexStatus: {
						Name:         indexStatus,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Status"},
					},
				},
			},
			tableEmployer: {
				Name: tableEmployer,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:       id,
					indexPosition: position,
				},
			},
		},
	}
}

// Store holds every record collection in one memdb instance. Readers see a
// consistent snapshot for the whole of a read transaction; each write is a
// single atomic transaction.
type Store struct {
	db *memdb.MemDB
}

func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreFromDataset creates a store holding ds in seed order.
func NewStoreFromDataset(ds *seed.Dataset) (*Store, error) {
	s, err := NewStore()
	if err != nil {
		return nil, err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	for i := range ds.Workers {
		if err := txn.Insert(tableWorker, newWorkerRow(ds.Workers[i], seqBase+uint64(i))); err != nil {
			return nil, fmt.Errorf("failed to seed worker %s: %w", ds.Workers[i].ID, err)
		}
	}
	for i := range ds.Jobs {
		if err := txn.Insert(tableJob, newJobRow(ds.Jobs[i], seqBase+uint64(i))); err != nil {
			return nil, fmt.Errorf("failed to seed job %s: %w", ds.Jobs[i].ID, err)
		}
	}
	for i := range ds.Employers {
		if err := txn.Insert(tableEmployer, newEmployerRow(ds.Employers[i], seqBase+uint64(i))); err != nil {
			return nil, fmt.Errorf("failed to seed employer %s: %w", ds.Employers[i].ID, err)
		}
	}

	txn.Commit()
	return s, nil
}

// snapshot returns every row of table in position order.
func (s *Store) snapshot(table string) ([]interface{}, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, indexPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	var rows []interface{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rows = append(rows, obj)
	}
	return rows, nil
}

func (s *Store) first(table, index string, args ...interface{}) (interface{}, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(table, index, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", table, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%s: %w", table, ErrNotFound)
	}
	return obj, nil
}

func (s *Store) count(table, index string, args ...interface{}) (int, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, index, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}

// insert adds a new row built by build, placed before the first row when
// prepend is set and after the last row otherwise. An existing id is
// rejected; stored rows are never replaced.
func (s *Store) insert(table, id string, prepend bool, build func(seq uint64) interface{}) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(table, indexID, id)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", table, err)
	}
	if existing != nil {
		return fmt.Errorf("%s %s: %w", table, id, ErrDuplicateID)
	}

	seq := seqBase
	var edge interface{}
	if prepend {
		edge, err = txn.First(table, indexPosition)
	} else {
		edge, err = txn.Last(table, indexPosition)
	}
	if err != nil {
		return fmt.Errorf("failed to position %s: %w", table, err)
	}
	if edge != nil {
		if prepend {
			seq = edge.(row).seq() - 1
		} else {
			seq = edge.(row).seq() + 1
		}
	}

	if err := txn.Insert(table, build(seq)); err != nil {
		return fmt.Errorf("failed to insert %s: %w", table, err)
	}
	txn.Commit()
	return nil
}
