// Package python provides dependency updates for Python projects.
//
// # Overview
//
// This package implements [deps.Language] for Python, supporting:
//
//   - PyPI lookups via the [pypi] client
//   - pyproject.toml in PEP 621 and Poetry layouts
//
// # Manifests
//
// PEP 621 requirements are PEP 508 strings; extras and environment markers
// are ignored when reading and left untouched when writing:
//
//	"uvicorn[standard]>=0.30; python_version >= '3.9'"
//
// becomes, after an update to 0.32.0,
//
//	"uvicorn[standard]>=0.32.0; python_version >= '3.9'"
//
// Poetry dependencies may be plain strings or inline tables with a version
// key. The python entry under tool.poetry.dependencies is never updated.
//
// [pypi]: github.com/matzehuels/depup/pkg/integrations/pypi
// [deps.Language]: github.com/matzehuels/depup/pkg/deps.Language
package python
