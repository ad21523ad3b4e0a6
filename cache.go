/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrgen

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Templates and Reed-Solomon generators are pure functions of their key, so
// they are memoized and shared read-only across encodings. singleflight
// keeps construction to at most one in-flight build per key; a duplicate
// build after a lost race would be correct but wasted work.
var (
	templateCache sync.Map // Version -> *versionTemplate
	templateGroup singleflight.Group

	generatorCache sync.Map // int -> *reedSolomonGenerator
	generatorGroup singleflight.Group
)

// templateForVersion returns the shared template for a version in [1, 40].
func templateForVersion(version Version) *versionTemplate {
	if t, ok := templateCache.Load(version); ok {
		return t.(*versionTemplate)
	}

	t, _, _ := templateGroup.Do(strconv.Itoa(int(version)), func() (interface{}, error) {
		template := newVersionTemplate(version)
		templateCache.Store(version, template)
		return template, nil
	})

	return t.(*versionTemplate)
}

// generatorForDegree returns the shared Reed-Solomon generator for a degree
// in [1, 255].
func generatorForDegree(degree int) *reedSolomonGenerator {
	if g, ok := generatorCache.Load(degree); ok {
		return g.(*reedSolomonGenerator)
	}

	g, _, _ := generatorGroup.Do(strconv.Itoa(degree), func() (interface{}, error) {
		generator := newReedSolomonGenerator(degree)
		generatorCache.Store(degree, generator)
		return generator, nil
	})

	return g.(*reedSolomonGenerator)
}
