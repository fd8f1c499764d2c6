package testing

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelconv/modelconv/internal/files/filesystem"
	"github.com/modelconv/modelconv/pkg/modelconv"
)

// SampleDraft is representative gltfjsx --types output for a single-mesh scene.
const SampleDraft = `/*
Auto-generated by: https://github.com/pmndrs/gltfjsx
Command: npx gltfjsx@6.5.3 scene.gltf --types
*/

import * as THREE from 'three'
import React from 'react'
import { useGLTF } from '@react-three/drei'
import { GLTF } from 'three-stdlib'

type GLTFResult = GLTF & {
  nodes: {
    Object_2: THREE.Mesh
  }
  materials: {
    material: THREE.MeshStandardMaterial
  }
}

export function Model(props: JSX.IntrinsicElements['group']) {
  const { nodes, materials } = useGLTF('/scene.gltf') as GLTFResult
  return (
    <group {...props} dispose={null}>
      <mesh geometry={nodes.Object_2.geometry} material={materials.material} />
    </group>
  )
}

useGLTF.preload('/scene.gltf')
`

// FakeCompiler stands in for gltfjsx. It records every request and writes
// Draft to the requested output through FS.
// Thread-safe for concurrent use.
type FakeCompiler struct {
	FS filesystem.FileSystemProvider

	// Draft is written for every successful compile. Defaults to SampleDraft.
	Draft string

	// FailOn maps an input path to the error Compile returns for it.
	FailOn map[string]error

	// SkipWrite makes Compile succeed without writing a draft.
	SkipWrite bool

	mu    sync.Mutex
	calls []modelconv.CompileRequest
}

// NewFakeCompiler creates a FakeCompiler writing SampleDraft into fs.
func NewFakeCompiler(fs filesystem.FileSystemProvider) *FakeCompiler {
	return &FakeCompiler{
		FS:     fs,
		Draft:  SampleDraft,
		FailOn: make(map[string]error),
	}
}

// Compile implements modelconv.Compiler.
func (f *FakeCompiler) Compile(ctx context.Context, req modelconv.CompileRequest) (modelconv.CompileResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return modelconv.CompileResult{}, err
	}
	if err, ok := f.FailOn[req.Input]; ok {
		return modelconv.CompileResult{}, err
	}
	if f.SkipWrite {
		return modelconv.CompileResult{OutputPath: req.Output}, nil
	}
	if err := f.FS.WriteFile(req.Output, []byte(f.Draft)); err != nil {
		return modelconv.CompileResult{}, fmt.Errorf("fake compiler: %w", err)
	}
	return modelconv.CompileResult{OutputPath: req.Output}, nil
}

// Calls returns a copy of the recorded requests in call order.
func (f *FakeCompiler) Calls() []modelconv.CompileRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]modelconv.CompileRequest, len(f.calls))
	copy(out, f.calls)
	return out
}

// Inputs returns the input path of every recorded request.
func (f *FakeCompiler) Inputs() []string {
	var out []string
	for _, c := range f.Calls() {
		out = append(out, c.Input)
	}
	return out
}

// Reset forgets recorded requests.
func (f *FakeCompiler) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = nil
}

var _ modelconv.Compiler = (*FakeCompiler)(nil)
