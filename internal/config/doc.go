// Package config provides configuration management for export runs.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Expanding the root selection for each scale type
//   - Conversion to PathConfig and ExerciseConfig for the model package
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Writes ABC to ~/Music/Virtuoso/abc
//	// Every major and harmonic minor key, four at a time
//	// A tune book collecting all exercises
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Example File
//
//	{
//	  "output_path": "/scales/{format}",
//	  "file_name_format": "{num} {key} {scale}",
//	  "formats": ["abc", "midi"],
//	  "scale_types": ["major", "melodic-minor"],
//	  "roots": ["C", "G", "F#"],
//	  "tempo": 96
//	}
package config
