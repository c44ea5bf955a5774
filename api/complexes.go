package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (c *Client) GetProvinces(ctx context.Context) ([]Province, error) {
	var provinces []Province
	if err := c.getJSON(ctx, "/provinces", nil, &provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}

func (c *Client) GetDistrictsByProvince(ctx context.Context, provinceID int) ([]District, error) {
	var districts []District
	if err := c.getJSON(ctx, fmt.Sprintf("/districts/province/%d", provinceID), nil, &districts); err != nil {
		return nil, err
	}
	return districts, nil
}

func (c *Client) GetAllComplexes(ctx context.Context) ([]Complex, error) {
	var complexes []Complex
	if err := c.getJSON(ctx, "/complexes", nil, &complexes); err != nil {
		return nil, err
	}
	return complexes, nil
}

// ComplexFilter narrows a complex search. Zero values mean "any"; the
// district filter only makes sense once a province is chosen, which the
// caller enforces.
type ComplexFilter struct {
	ProvinceID int
	DistrictID int
	PitchType  string
}

func (c *Client) SearchComplexes(ctx context.Context, filter ComplexFilter) ([]Complex, error) {
	q := url.Values{}
	if filter.ProvinceID != 0 {
		q.Set("provinceId", strconv.Itoa(filter.ProvinceID))
	}
	if filter.DistrictID != 0 {
		q.Set("districtId", strconv.Itoa(filter.DistrictID))
	}
	if filter.PitchType != "" {
		q.Set("pitchType", filter.PitchType)
	}

	var complexes []Complex
	if err := c.getJSON(ctx, "/complexes/search", q, &complexes); err != nil {
		return nil, err
	}
	return complexes, nil
}

func (c *Client) GetComplexByID(ctx context.Context, id int) (Complex, error) {
	var complex Complex
	if err := c.getJSON(ctx, fmt.Sprintf("/complexes/%d", id), nil, &complex); err != nil {
		return Complex{}, err
	}
	return complex, nil
}

func (c *Client) GetNearbyComplexes(ctx context.Context, lat, lon, radiusKm float64) ([]Complex, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lng", strconv.FormatFloat(lon, 'f', 6, 64))
	q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	var complexes []Complex
	if err := c.getJSON(ctx, "/complexes/nearby", q, &complexes); err != nil {
		return nil, err
	}
	return complexes, nil
}

func (c *Client) GetPitchesByComplex(ctx context.Context, complexID int) ([]Pitch, error) {
	var pitches []Pitch
	if err := c.getJSON(ctx, fmt.Sprintf("/pitches/complex/%d", complexID), nil, &pitches); err != nil {
		return nil, err
	}
	return pitches, nil
}

func (c *Client) GetPitchGroupsByComplex(ctx context.Context, complexID int) ([]PitchGroup, error) {
	var groups []PitchGroup
	if err := c.getJSON(ctx, fmt.Sprintf("/pitch-groups/complex/%d", complexID), nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetImagesByComplex(ctx context.Context, complexID int) ([]ComplexImage, error) {
	var images []ComplexImage
	if err := c.getJSON(ctx, fmt.Sprintf("/images/complex/%d", complexID), nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}
