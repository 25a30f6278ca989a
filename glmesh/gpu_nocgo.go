//go:build tinygo || !cgo

package glmesh

import "errors"

var errNoCGO = errors.New("mesh upload requires CGo and is not supported on TinyGo")

func (m *Mesh) Upload() error { return errNoCGO }

func (m *Mesh) Draw() {}

func (m *Mesh) Delete() {}
