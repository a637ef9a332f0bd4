// Package pipeline wires the feature stages into one configurable detector:
//
//	image → corner response → greedy NMS keypoints → patch descriptors
//
// and matches or tracks the resulting frames.
//
// A Pipeline is built from a Config, which is usually decoded from YAML:
//
//	cfg, err := pipeline.LoadConfig("features.yaml")
//	p, err := pipeline.New(cfg, pipeline.WithLogger(logger))
//	q, err := p.Detect(queryImg)
//	db, err := p.Detect(databaseImg)
//	ms, err := p.Match(q, db)
//	fmt.Println(pipeline.Summarize(ms))
//
// Every Detect collects its own diagnostics into Frame.Diagnostics and
// mirrors them to the pipeline logger.
package pipeline
