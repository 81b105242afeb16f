// Package validate checks decoded import records before they reach the engine.
//
// It wraps go-playground/validator with the tags import records use:
//
//   - langtag: the value is a well-formed BCP 47 language tag (e.g. "en", "pt-BR").
//
// Mode attributes are validated with oneof, so an unknown import mode never reaches
// the reconciliation engine.
//
// # Usage
//
//	if err := validate.Struct(record); err != nil {
//	    var verr *validate.Error
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.Fields)
//	    }
//	}
package validate
