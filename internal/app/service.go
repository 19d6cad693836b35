package app

import (
	"countrytable/internal/countries"
	"countrytable/internal/query"
)

// Service wires the dataset and the query engine. The dataset is loaded
// once here and read-only afterwards.
type Service struct {
	Dataset *countries.Dataset
	Engine  *query.Engine
}

// NewService loads the dataset from path, or the embedded default when
// path is empty.
func NewService(path string) (*Service, error) {
	var (
		ds  *countries.Dataset
		err error
	)
	if path != "" {
		ds, err = countries.LoadDataset(path)
	} else {
		ds, err = countries.DefaultDataset()
	}
	if err != nil {
		return nil, err
	}

	return &Service{
		Dataset: ds,
		Engine:  query.NewEngine(ds),
	}, nil
}
