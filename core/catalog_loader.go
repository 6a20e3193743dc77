package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/solarsim/model"
)

// internal JSON shapes – kept unexported so the wire format can evolve
// without touching the model types. Field names follow the upstream
// catalog convention (Omega = ascending node, omega = periapsis).
type catalogJSON struct {
	Bodies []bodyJSON `json:"bodies"`
}

type bodyJSON struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Parent   *int   `json:"parent"`
	Streamed bool   `json:"streamed"`
	Fallback bool   `json:"fallback_derived"`

	Orbit *orbitJSON `json:"canonical_orbit"`

	GM       *float64 `json:"gm"`
	RadiusEq *float64 `json:"r_eq"`
	J2       *float64 `json:"j2"`

	OrientationQuat *[4]float64 `json:"orientation_quat"`
	PoleRA          *[3]float64 `json:"pole_ra"`
	PoleDec         *[3]float64 `json:"pole_dec"`
	PrimeMeridian   *[3]float64 `json:"pm"`
}

type orbitJSON struct {
	A    float64 `json:"a"`
	E    float64 `json:"e"`
	I    float64 `json:"i"`
	Node float64 `json:"Omega"`
	Peri float64 `json:"omega"`
	M0   float64 `json:"M0"`
}

// LoadCatalogJSON reads a JSON catalog from r and returns a validated
// Catalog. Structural validation is the same as LoadCatalog; this function
// adds only decode errors on top.
func LoadCatalogJSON(r io.Reader) (*Catalog, error) {
	var payload catalogJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	records := make([]model.Body, 0, len(payload.Bodies))
	for _, jb := range payload.Bodies {
		b := model.Body{
			ID:              jb.ID,
			Name:            jb.Name,
			Parent:          jb.Parent,
			Streamed:        jb.Streamed,
			FallbackDerived: jb.Fallback,
			GM:              jb.GM,
			RadiusEq:        jb.RadiusEq,
			J2:              jb.J2,
			OrientationQuat: jb.OrientationQuat,
			PoleRA:          jb.PoleRA,
			PoleDec:         jb.PoleDec,
			PrimeMeridian:   jb.PrimeMeridian,
		}
		if jb.Orbit != nil {
			b.Orbit = &model.OrbitalElements{
				A:    jb.Orbit.A,
				E:    jb.Orbit.E,
				I:    jb.Orbit.I,
				Node: jb.Orbit.Node,
				Peri: jb.Orbit.Peri,
				M0:   jb.Orbit.M0,
			}
		}
		records = append(records, b)
	}
	return LoadCatalog(records)
}
