package engine

import v1 "krypt.co/ikescan/isakmp/v1"

// aesKeyLengths are the variants emitted for a variable-key encryption
// algorithm. AES_CBC is the only Phase-1 cipher in this scanner's
// enumeration that takes a KeyLength attribute.
var aesKeyLengths = []uint16{128, 192, 256}

// EnumerateCandidates forms the Cartesian product of every non-zero
// EncryptionAlgorithm, HashAlgorithm, AuthenticationMethod and
// GroupDescription. AES_CBC contributes three variants per combination
// (key lengths 128, 192, 256); every other encryption contributes one,
// with no KeyLength attribute. Enumeration order is stable across calls.
func EnumerateCandidates() []CandidateTransform {
	var out []CandidateTransform
	for _, enc := range v1.AllEncryptionAlgorithms() {
		for _, hash := range v1.AllHashAlgorithms() {
			for _, auth := range v1.AllAuthenticationMethods() {
				for _, group := range v1.AllGroupDescriptions() {
					if enc == v1.EncAESCBC {
						for _, kl := range aesKeyLengths {
							out = append(out, CandidateTransform{
								Encryption: enc, Hash: hash, Auth: auth, Group: group, KeyLength: kl,
							})
						}
						continue
					}
					out = append(out, CandidateTransform{Encryption: enc, Hash: hash, Auth: auth, Group: group})
				}
			}
		}
	}
	return out
}

// ChunkBatches splits candidates into an ordered FIFO of batches of at most
// size elements each. The last batch may be smaller.
func ChunkBatches(candidates []CandidateTransform, size int) []Batch {
	if size <= 0 {
		size = len(candidates)
	}
	var batches []Batch
	for i := 0; i < len(candidates); i += size {
		end := i + size
		if end > len(candidates) {
			end = len(candidates)
		}
		batches = append(batches, Batch{Transforms: append([]CandidateTransform(nil), candidates[i:end]...)})
	}
	return batches
}
