// Package seed loads the reference data (document types, their data
// elements and the associations between them) into a freshly reset
// database. It runs on every startup, after the schema wipe.
package seed

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/service"
)

// Run creates every seed document type, then its data elements, and
// associates each element using the identities returned by the inserts.
// Nothing here depends on rows receiving particular numeric ids.
//
// A failed row is logged and skipped rather than aborting startup, so
// one bad entry cannot take the service down with it.
func Run(ctx context.Context, types service.DocumentTypeService) error {
	log := logrus.WithField("component", "seed")

	for _, st := range seedTypes {
		docType, err := types.CreateType(ctx, st.Name, strp(st.Description))
		if err != nil {
			log.WithField("document_type", st.Name).WithError(err).Error("seeding document type failed")
			continue
		}

		for _, se := range st.Elements {
			elem, err := types.CreateElement(ctx, se.Name, strp(se.Description))
			if err != nil {
				log.WithField("data_element", se.Name).WithError(err).Error("seeding data element failed")
				continue
			}

			err = types.Associate(ctx, model.DocumentTypeDataElement{
				DocumentTypeID: docType.ID,
				DataElementID:  elem.ID,
				IsRequired:     se.Required,
				AllowMultiple:  se.Multiple,
			})
			if err != nil {
				log.WithFields(logrus.Fields{
					"document_type": st.Name,
					"data_element":  se.Name,
				}).WithError(err).Error("seeding association failed")
			}
		}

		log.WithFields(logrus.Fields{
			"document_type": st.Name,
			"data_elements": len(st.Elements),
		}).Info("seeded document type")
	}

	return nil
}

func strp(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
