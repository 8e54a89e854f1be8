package resolv

import (
	"encoding/json"
	"net/http"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/entity"
)

// PingContentType is the media type of a ping body
const PingContentType = "application/json"

// PingResult answers an existence probe for a referent.  Body is empty unless
// the referent was found.
type PingResult struct {
	Code        int
	ContentType string
	Body        []byte
}

type pingBody struct {
	Identifier string `json:"identifier"`
	Status     string `json:"status"`
}

// Ping probes whether the image behind a referent exists, without resolving it
// any further.  Failures to read the referent or probe its status are reported
// as an internal error, never as not found.
func (cxt *Cxt) Ping(referent *entity.Entity) PingResult {
	result := PingResult{
		Code:        http.StatusNotFound,
		ContentType: PingContentType,
		Body:        []byte{},
	}

	id, status, err := cxt.probe(referent)
	if err != nil {
		cxt.log.Error(err, "ping failed")
		result.Code = http.StatusInternalServerError
		return result
	}

	result.Code = status.HTTPStatus()
	if status != lresolv.Found {
		return result
	}

	body, err := json.Marshal(pingBody{
		Identifier: id,
		Status:     status.String(),
	})
	if err != nil {
		cxt.log.Error(err, "could not encode ping response", "id", id)
		result.Code = http.StatusInternalServerError
		return result
	}

	result.Body = body
	return result
}

func (cxt *Cxt) probe(referent *entity.Entity) (string, lresolv.Status, error) {
	uri, err := lresolv.ReferentURI(referent)
	if err != nil {
		return "", lresolv.Unknown, err
	}

	id := uri.String()
	status, err := cxt.resolver.Status(id)
	return id, status, err
}
