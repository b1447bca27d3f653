// perf/data.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"embed"
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/RISCfuture/SF50-TOLD-sub003/log"
	"github.com/RISCfuture/SF50-TOLD-sub003/util"
)

// The performance dataset is embedded as CSV, one file per chart. Each
// file's header names the axes, last column "value"; each row is one
// chart cell.
//
//go:embed all:data
var dataFS embed.FS

// TableSet is the full compiled dataset, keyed by chart path ("takeoff/
// ground run", "vref/100", ...).
type TableSet struct {
	Version string
	Tables  map[string]*Table
}

func (ts *TableSet) Table(name string) *Table {
	return ts.Tables[name]
}

// Names returns the chart keys in sorted order.
func (ts *TableSet) Names() []string {
	return util.SortedMapKeys(ts.Tables)
}

// LoadTables parses the embedded dataset into a TableSet, going through
// the on-disk object cache when a previous run already compiled this
// dataset. The cache key includes a hash of the embedded CSV bytes, so
// a build with changed data never sees a stale cache.
func LoadTables(lg *log.Logger) (*TableSet, error) {
	paths, version, err := datasetManifest()
	if err != nil {
		return nil, err
	}
	cachePath := "tables-" + version + ".msgpack.zst"

	var ts TableSet
	if _, err := util.CacheRetrieveObject(cachePath, &ts); err == nil && ts.Version == version {
		lg.Debugf("loaded %d tables from cache %s", len(ts.Tables), cachePath)
		return &ts, nil
	}

	ts = TableSet{Version: version, Tables: make(map[string]*Table)}
	for _, path := range paths {
		tab, err := parseTableCSV(path)
		if err != nil {
			return nil, err
		}
		ts.Tables[tab.Name] = tab
	}
	lg.Infof("compiled %d performance tables (dataset %s)", len(ts.Tables), version)

	if err := util.CacheStoreObject(cachePath, &ts); err != nil {
		lg.Warnf("unable to cache table set: %v", err)
	}
	return &ts, nil
}

// datasetManifest returns the sorted CSV paths under data/ and an FNV
// hash of their contents, used as the dataset version.
func datasetManifest() ([]string, string, error) {
	var paths []string
	err := fs.WalkDir(dataFS, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".csv") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	sort.Strings(paths)

	h := fnv.New64a()
	for _, path := range paths {
		b, err := fs.ReadFile(dataFS, path)
		if err != nil {
			return nil, "", err
		}
		h.Write([]byte(path))
		h.Write(b)
	}
	return paths, fmt.Sprintf("%016x", h.Sum64()), nil
}

func parseTableCSV(path string) (*Table, error) {
	f, err := dataFS.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: header only", path)
	}

	header := records[0]
	if header[len(header)-1] != "value" {
		return nil, fmt.Errorf("%s: last column is %q, expected \"value\"", path, header[len(header)-1])
	}
	axisNames := header[:len(header)-1]

	rows := make([][]float64, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, field := range rec {
			if row[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
			}
		}
		rows = append(rows, row)
	}

	name := strings.TrimPrefix(strings.TrimSuffix(path, ".csv"), "data/")
	return MakeTable(name, axisNames, rows)
}
