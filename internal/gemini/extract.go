package gemini

// an extraction strategy locates the candidate list in one known
// response shape, returning nil when that shape is not present
type extractionStrategy func(*GenerateResponse) []Candidate

// strategies are tried in order; the nested envelope wins when both exist
var extractionStrategies = []extractionStrategy{
	nestedCandidates,
	topLevelCandidates,
}

func nestedCandidates(resp *GenerateResponse) []Candidate {
	if resp.Response == nil {
		return nil
	}

	return resp.Response.Candidates
}

func topLevelCandidates(resp *GenerateResponse) []Candidate {
	return resp.Candidates
}

// ExtractImage pulls the first inline image out of a model response.
//
// The response shape is not guaranteed, so extraction is defensive: each
// known candidate location is probed in order and every content part is
// scanned for inline data. A response with no image anywhere yields
// ok=false rather than an error; the caller decides how to report it.
func ExtractImage(resp *GenerateResponse) ([]byte, string, bool) {
	if resp == nil {
		return nil, "", false
	}

	for _, strategy := range extractionStrategies {
		candidates := strategy(resp)
		if len(candidates) == 0 {
			continue
		}

		for _, candidate := range candidates {
			for _, part := range candidate.Content.Parts {
				if part.InlineData == nil || part.InlineData.Data == "" {
					continue
				}

				decoded, err := DecodeImageData(part.InlineData.Data)
				if err != nil {
					// malformed payload in this part, keep scanning
					continue
				}

				mimeType := part.InlineData.MimeType
				if mimeType == "" {
					mimeType = "image/png"
				}

				return decoded, mimeType, true
			}
		}
	}

	return nil, "", false
}
