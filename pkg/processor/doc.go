// Package processor transforms cookie values between their application form
// and their wire form.
//
// Every cookie crossing the processor is percent-encoded or -decoded so
// arbitrary bytes survive the Cookie/Set-Cookie headers. On top of that,
// named cookies can be protected by crypto rules:
//
//   - Signing: HMAC-SHA256 tag prepended to the value. The client can read
//     the value but cannot alter it undetected.
//   - Encryption: XChaCha20-Poly1305 with the cookie name as associated
//     data. The client sees only opaque ciphertext.
//
// # Configuration
//
//	key := processor.GenerateKey()
//	proc := processor.Config{
//		Rules: []processor.Rule{{
//			Names:     []string{"__session"},
//			Algorithm: processor.Encryption,
//			Key:       key,
//		}},
//	}.Processor()
//
// A rule's Fallbacks are older keys still accepted on incoming cookies,
// which allows rotation: issue with the new primary, keep verifying what the
// old key signed until those cookies expire.
//
// # Errors
//
// ProcessIncoming failures are *ProtectionError, classified by ErrorKind:
// KindCrypto for failed decryption, KindDecoding for encoding and signature
// problems, KindOther for the rest. RenderOutgoing failures are
// *RenderError. The middleware treats both as fatal to the request.
//
// A Processor is immutable after Config.Processor and safe for concurrent
// use across requests.
package processor
