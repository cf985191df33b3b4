// Package php provides dependency updates for PHP projects using Composer.
//
// The [Language] definition reads composer.json and looks versions up on
// Packagist. Platform requirements such as "php" or "ext-json" are never
// reported.
package php
