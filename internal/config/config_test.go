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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.Equal(t, "svg", c.Format)
	assert.Equal(t, 8, c.Scale)
	assert.Equal(t, 4, c.Border)
	assert.Equal(t, "M", c.ECL)
	assert.Nil(t, c.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrgen.yaml")
	content := "format: png\nscale: 12\necl: H\n"
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, "png", c.Format)
	assert.Equal(t, 12, c.Scale)
	assert.Equal(t, "H", c.ECL)
	// Values missing from the file keep their defaults.
	assert.Equal(t, 4, c.Border)
	assert.Equal(t, "#000000", c.Dark)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NotNil(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrgen.yaml")
	assert.Nil(t, os.WriteFile(path, []byte("scale: -2\n"), 0o644))

	_, err := Load(path)
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	c := Defaults()
	c.Format = "jpeg"
	assert.NotNil(t, c.Validate())

	c = Defaults()
	c.Scale = 0
	assert.NotNil(t, c.Validate())

	c = Defaults()
	c.Border = -1
	assert.NotNil(t, c.Validate())
}
