// Package java provides dependency updates for Gradle projects.
//
// # Overview
//
// This package implements [deps.Language] for Java, supporting:
//
//   - Maven Central lookups via the [maven] client
//   - build.gradle and build.gradle.kts scripts
//
// Package names are Maven coordinates: "groupId:artifactId".
//
// # Variables
//
// Versions are often shared through a variable:
//
//	def wicketVersion = '9.12.0'
//	implementation group: 'org.apache.wicket', name: 'wicket-core', version: wicketVersion
//
// Updating such a dependency rewrites the definition and keeps its quote
// character; the dependency line stays as it is. Groovy def, Kotlin val and
// ext entries are recognised.
//
// [maven]: github.com/matzehuels/depup/pkg/integrations/maven
// [deps.Language]: github.com/matzehuels/depup/pkg/deps.Language
package java
