// Package config provides configuration for objectpool workload runs.
//
// # Key Features
//
// - WorkloadConfig: single configuration structure for a run
// - Structured sections: Workload, Observability
// - Environment variable substitution with ${VAR_NAME} syntax
// - Defaults and validation
//
// # Usage
//
// ## Loading
//
//	cfg, err := config.LoadWorkload("workload.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// ## Environment Variable Substitution
//
//	# workload.yaml
//	name: ${RUN_NAME}
//	workload:
//	  rounds: 50
//	  burst: ${BURST}
//	  release_order: fifo
//
// Fields missing from the file keep the values from NewWorkloadConfig.
// The pool itself takes no configuration; these settings only drive the
// workload command.
package config
