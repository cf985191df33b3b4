// Package ruby provides dependency updates for Ruby projects.
//
// # Overview
//
// This package implements [deps.Language] for Ruby, supporting:
//
//   - RubyGems.org lookups via the [rubygems] client
//   - Gemfile parsing
//
// # Manifests
//
// A gem is reported only when its declaration carries a version:
//
//	gem 'rails', '~> 7.1'
//	gem 'puma', '>= 6.0', '< 7'
//
// Gems inside group :development or group :test blocks are dev
// dependencies. Updates rewrite the first version literal of the
// declaration and keep its operator and quoting.
//
// [rubygems]: github.com/matzehuels/depup/pkg/integrations/rubygems
// [deps.Language]: github.com/matzehuels/depup/pkg/deps.Language
package ruby
