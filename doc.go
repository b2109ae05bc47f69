/*

Package argon2 implements the Argon2 memory-hard key-derivation function
as specified in RFC 9106, version 0x13.

Argon2 comes in three flavors:

Argon2d uses data-dependent memory access. It is the fastest variant and
maximally resistant to GPU cracking, but the data-dependent access pattern
makes it unsuitable for anything where an attacker can observe memory access
timing, such as hashing secrets on a shared machine.

Argon2i uses data-independent memory access, making it suitable for hashing
secrets such as passwords. It requires more passes over memory than Argon2d
to give the same resistance to time-memory trade-off attacks.

Argon2id is a hybrid construction: data-independent addressing for the first
half of the first pass, data-dependent addressing for the rest. It combines
Argon2i's resistance to side-channel attacks with Argon2d's resistance to
trade-off attacks, and is the variant recommended by the RFC for most uses.

The package exposes a raw key-derivation primitive for each variant
(Hash2d/Hash2i/Hash2id), a PHC-string-encoding form of each, and constant-time
verification against a previously encoded PHC string.

*/
package argon2
