// Copyright 2026 The Kanata Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sexpr

import "github.com/alecthomas/repr"

// Dump pretty-prints expr's tree shape, for showing a parsed
// sub-expression to a developer while debugging.
func Dump(expr SExpr) string {
	return repr.String(expr, repr.Indent("  "), repr.OmitEmpty(true))
}
