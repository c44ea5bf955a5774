package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
)

// PageSize is the fixed client-side page size for browse results.
const PageSize = 9

// BrowseFilters is the last filter search issued.
type BrowseFilters struct {
	ProvinceID int    `json:"provinceId,omitempty"`
	DistrictID int    `json:"districtId,omitempty"`
	PitchType  string `json:"pitchType,omitempty"`
}

// BrowseState snapshots the facility browser so returning from a detail
// view restores the previous results and page without re-querying. The
// whole snapshot is overwritten on every mutation; a fresh search
// replaces it and remembers the page it rendered.
type BrowseState struct {
	Complexes   []api.Complex  `json:"complexes"`
	Filters     BrowseFilters  `json:"filters"`
	CurrentPage int            `json:"currentPage"`
	Districts   []api.District `json:"districts"`
}

// Page slices complexes for 1-based page n at the fixed page size.
func Page(complexes []api.Complex, n int) []api.Complex {
	if n < 1 {
		n = 1
	}
	start := (n - 1) * PageSize
	if start >= len(complexes) {
		return []api.Complex{}
	}
	end := start + PageSize
	if end > len(complexes) {
		end = len(complexes)
	}
	return complexes[start:end]
}

// TotalPages for a result set at the fixed page size; at least 1.
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

func LoadBrowseState() (*BrowseState, error) {
	path, err := BrowsePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("browse state path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var state BrowseState
	if err := json.NewDecoder(file).Decode(&state); err != nil {
		return nil, err
	}
	if state.CurrentPage < 1 {
		state.CurrentPage = 1
	}
	return &state, nil
}

func SaveBrowseState(state *BrowseState) error {
	if _, err := ensureConfigDir(); err != nil {
		return err
	}
	path, err := BrowsePath()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(state)
}

func ClearBrowseState() error {
	path, err := BrowsePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}
